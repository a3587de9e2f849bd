package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/phonekart/phonekart-agent/internal/domain"
)

const maxRecommendations = 5

// Rank scores each candidate against the message and returns at most 5
// recommendations, sorted by descending relevance (stable for ties).
func Rank(candidates []domain.Phone, message string) []domain.Recommendation {
	if len(candidates) == 0 {
		return nil
	}

	lower := strings.ToLower(message)

	recs := make([]domain.Recommendation, 0, len(candidates))
	for _, p := range candidates {
		recs = append(recs, domain.Recommendation{
			Phone:          p,
			Rationale:      buildRationale(p),
			RelevanceScore: relevanceScore(p, lower),
		})
	}

	sort.SliceStable(recs, func(a, b int) bool {
		return recs[a].RelevanceScore > recs[b].RelevanceScore
	})

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

// PickComparison selects the phones shown side by side for the compare
// intent: the first 3 candidates in their retrieval order, unscored. This is
// a different policy from Rank and intentionally stays that way.
func PickComparison(candidates []domain.Phone) []domain.Phone {
	if len(candidates) > 3 {
		candidates = candidates[:3]
	}
	return candidates
}

// buildRationale concatenates the present fields into a short fragment list:
// price, camera, battery, then up to the first 3 features.
func buildRationale(p domain.Phone) string {
	var clauses []string
	if p.Price != nil {
		clauses = append(clauses, fmt.Sprintf("Priced at ₹%d", *p.Price))
	}
	if p.Camera != "" {
		clauses = append(clauses, fmt.Sprintf("features a %s camera", p.Camera))
	}
	if p.Battery != "" {
		clauses = append(clauses, p.Battery+" battery")
	}
	if len(p.Features) > 0 {
		features := p.Features
		if len(features) > 3 {
			features = features[:3]
		}
		clauses = append(clauses, "key features: "+strings.Join(features, ", "))
	}
	return strings.Join(clauses, ", ")
}

// relevanceScore starts at a 0.5 base and adds bonuses for the phone's name,
// brand and features appearing in the (lowercased) message, clamped to 1.0.
func relevanceScore(p domain.Phone, lowerMessage string) float64 {
	score := 0.5

	if p.Name != "" && strings.Contains(lowerMessage, strings.ToLower(p.Name)) {
		score += 0.3
	}
	if p.Brand != "" && strings.Contains(lowerMessage, strings.ToLower(p.Brand)) {
		score += 0.2
	}
	for _, f := range p.Features {
		if strings.Contains(lowerMessage, strings.ToLower(f)) {
			score += 0.1
		}
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}
