package conversation

import (
	"fmt"
	"strings"

	"github.com/phonekart/phonekart-agent/internal/domain"
)

const promptPreamble = "You are a helpful phone shopping assistant. "

const promptStyle = "Provide helpful, concise, and friendly responses. " +
	"Focus on helping customers find the right phone for their needs. " +
	"Be conversational and natural. "

// buildSystemPrompt assembles the provider prompt: role preamble, an
// enumerated listing of the candidate phones, and an intent-specific
// instruction.
func buildSystemPrompt(it domain.Intent, phones []domain.Phone) string {
	var b strings.Builder
	b.WriteString(promptPreamble)

	if len(phones) > 0 {
		b.WriteString("Here are some phones from our catalog:\n\n")
		for _, p := range phones {
			fmt.Fprintf(&b, "- %s (%s)", p.Name, p.Brand)
			if p.Price != nil {
				fmt.Fprintf(&b, " - ₹%d", *p.Price)
			}
			if p.Camera != "" {
				fmt.Fprintf(&b, ", Camera: %s", p.Camera)
			}
			if p.Battery != "" {
				fmt.Fprintf(&b, ", Battery: %s", p.Battery)
			}
			if len(p.Features) > 0 {
				fmt.Fprintf(&b, ", Features: %s", strings.Join(p.Features, ", "))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(promptStyle)
	b.WriteString(intentInstruction(it))

	return b.String()
}

func intentInstruction(it domain.Intent) string {
	switch it {
	case domain.IntentCompare:
		return "Compare the phones mentioned, highlighting key differences in price, features, camera, and battery."
	case domain.IntentRecommend:
		return "Recommend phones based on the customer's requirements, explaining why each is a good fit."
	case domain.IntentSearchByPrice:
		return "Help the customer find phones within their budget, highlighting value for money."
	default:
		return "Answer the customer's question about phones."
	}
}
