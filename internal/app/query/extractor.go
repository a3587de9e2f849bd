package query

import (
	"strconv"
	"strings"

	"github.com/phonekart/phonekart-agent/internal/app/catalog"
	"github.com/phonekart/phonekart-agent/internal/app/intent"
	"github.com/phonekart/phonekart-agent/internal/domain"
)

// maxCandidates bounds every candidate set before it leaves this package.
const maxCandidates = 10

// Extractor turns a classified message into a candidate set from the catalog.
// A missed extraction is never an error: every path degrades to the full
// catalog rather than an empty result.
type Extractor struct {
	index *catalog.Index
}

func NewExtractor(index *catalog.Index) *Extractor {
	return &Extractor{index: index}
}

// Candidates builds the candidate set for the given intent, capped at the
// first 10 entries in catalog/insertion order.
func (e *Extractor) Candidates(message string, it domain.Intent) []domain.Phone {
	var phones []domain.Phone

	switch it {
	case domain.IntentListAll:
		phones = e.index.All()
	case domain.IntentSearchByPrice:
		phones = e.byPrice(message)
	case domain.IntentSearchByBrand:
		phones = e.byBrand(message)
	case domain.IntentSearchByFeature:
		phones = e.byFeature(message)
	case domain.IntentRecommend:
		phones = e.forRecommendation(message)
	case domain.IntentCompare:
		phones = e.forComparison(message)
	default:
		// General query: try the whole message as a name search first.
		phones = e.index.SearchByName(message)
		if len(phones) == 0 {
			phones = e.index.All()
		}
	}

	if len(phones) > maxCandidates {
		phones = phones[:maxCandidates]
	}
	return phones
}

// PriceCeiling parses the first budget quantity out of the message. Bare
// numbers below 100 are assumed to be stated in thousands of currency units
// and scaled accordingly.
func PriceCeiling(message string) (int, bool) {
	m := intent.PricePattern.FindStringSubmatch(strings.ToLower(message))
	if m == nil {
		return 0, false
	}
	ceiling, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	if ceiling < 100 {
		ceiling *= 1000
	}
	return ceiling, true
}

func (e *Extractor) byPrice(message string) []domain.Phone {
	ceiling, ok := PriceCeiling(message)
	if !ok {
		return e.index.All()
	}
	return e.index.SearchByMaxPrice(ceiling)
}

func (e *Extractor) byBrand(message string) []domain.Phone {
	brand := intent.BrandPattern.FindString(message)
	if brand == "" {
		return e.index.All()
	}
	// Pixel is a product line, not a catalog brand.
	if strings.EqualFold(brand, "pixel") {
		brand = "Google"
	}
	return e.index.SearchByBrand(brand)
}

func (e *Extractor) byFeature(message string) []domain.Phone {
	feature := intent.FeaturePattern.FindString(message)
	if feature == "" {
		return e.index.All()
	}
	return e.index.SearchByFeature(feature)
}

// forRecommendation unions the price, brand and feature extractions,
// deduplicated by name, falling back to the full catalog when nothing matched.
func (e *Extractor) forRecommendation(message string) []domain.Phone {
	var phones []domain.Phone
	phones = append(phones, e.byPrice(message)...)
	phones = append(phones, e.byBrand(message)...)
	phones = append(phones, e.byFeature(message)...)

	phones = dedupeByName(phones)
	if len(phones) == 0 {
		phones = e.index.All()
	}
	return phones
}

// forComparison scans the message for known catalog product names and
// defaults to the first 3 phones when none are mentioned.
func (e *Extractor) forComparison(message string) []domain.Phone {
	lower := strings.ToLower(message)

	var mentioned []string
	for _, name := range e.index.Names() {
		if strings.Contains(lower, strings.ToLower(name)) {
			mentioned = append(mentioned, name)
		}
	}

	if len(mentioned) > 0 {
		return e.index.FindManyByName(mentioned)
	}

	phones := e.index.All()
	if len(phones) > 3 {
		phones = phones[:3]
	}
	return phones
}

func dedupeByName(phones []domain.Phone) []domain.Phone {
	seen := make(map[string]struct{}, len(phones))
	var out []domain.Phone
	for _, p := range phones {
		key := strings.ToLower(p.Name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out
}
