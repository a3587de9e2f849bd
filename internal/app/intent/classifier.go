package intent

import (
	"regexp"
	"strings"

	"github.com/phonekart/phonekart-agent/internal/domain"
)

// Vocabulary tables driving classification. Kept as data so the rule set can
// be inspected and tested without touching the matching code.
var (
	compareTerms   = []string{"compare", "comparison", "difference", "vs", "versus", "between"}
	recommendTerms = []string{"recommend", "suggest", "best", "good", "which", "what"}
	brandTerms     = []string{"OnePlus", "Google", "Pixel", "Samsung", "Xiaomi", "Redmi", "Nothing", "Realme", "Vivo", "Motorola"}
	featureTerms   = []string{"fast charging", "AMOLED", "OLED", "120Hz", "camera", "battery", "storage", "ram", "processor", "OIS", "water resistant", "AI features"}
	listTerms      = []string{"all", "list", "show"}
)

// PricePattern captures the first numeric quantity preceded by budget
// vocabulary or a currency marker. The capture group is the raw number.
var PricePattern = regexp.MustCompile(`(?i)(?:under|below|less than|max|maximum|budget|price|₹|\$|rs|rupees?)\s*(?:of\s*)?(\d+)`)

// BrandPattern and FeaturePattern are shared with query extraction.
var (
	BrandPattern   = wordPattern(brandTerms)
	FeaturePattern = wordPattern(featureTerms)

	comparePattern   = wordPattern(compareTerms)
	recommendPattern = wordPattern(recommendTerms)
)

func wordPattern(terms []string) *regexp.Regexp {
	escaped := make([]string, len(terms))
	for i, t := range terms {
		escaped[i] = regexp.QuoteMeta(t)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(escaped, "|") + `)\b`)
}

type rule struct {
	intent domain.Intent
	match  func(lower string) bool
}

// rules are evaluated in order; the first match wins. Ordering is part of the
// contract: a message with both comparison and recommendation vocabulary
// classifies as compare.
var rules = []rule{
	{domain.IntentCompare, comparePattern.MatchString},
	{domain.IntentRecommend, recommendPattern.MatchString},
	{domain.IntentSearchByPrice, func(lower string) bool {
		return PricePattern.MatchString(lower) || strings.Contains(lower, "price") || strings.Contains(lower, "cost")
	}},
	{domain.IntentSearchByBrand, func(lower string) bool {
		return BrandPattern.MatchString(lower) || strings.Contains(lower, "brand")
	}},
	{domain.IntentSearchByFeature, func(lower string) bool {
		return FeaturePattern.MatchString(lower) || strings.Contains(lower, "feature")
	}},
	{domain.IntentListAll, func(lower string) bool {
		for _, t := range listTerms {
			if strings.Contains(lower, t) {
				return true
			}
		}
		return false
	}},
}

// Classify maps free text to exactly one intent. It is total and
// deterministic; unmatched messages fall through to general.
func Classify(message string) domain.Intent {
	lower := strings.ToLower(message)
	for _, r := range rules {
		if r.match(lower) {
			return r.intent
		}
	}
	return domain.IntentGeneral
}
