package conversation

import (
	"fmt"
	"strings"

	"github.com/phonekart/phonekart-agent/internal/domain"
)

const clarifyingQuestion = "I couldn't find any phones matching your request. Could you please provide more details?"

// FallbackReply composes a deterministic reply from the intent and candidate
// set. It is used whenever the generation provider is unconfigured or fails,
// and makes no external calls.
func FallbackReply(it domain.Intent, phones []domain.Phone) string {
	if len(phones) == 0 {
		return clarifyingQuestion
	}

	var b strings.Builder

	switch it {
	case domain.IntentCompare:
		b.WriteString("Here are some phones for comparison:\n\n")
		for _, p := range phones {
			fmt.Fprintf(&b, "**%s**\n", p.Name)
			if p.Price != nil {
				fmt.Fprintf(&b, "Price: ₹%d\n", *p.Price)
			}
			if p.Camera != "" {
				fmt.Fprintf(&b, "Camera: %s\n", p.Camera)
			}
			if p.Battery != "" {
				fmt.Fprintf(&b, "Battery: %s\n", p.Battery)
			}
			if p.Processor != "" {
				fmt.Fprintf(&b, "Processor: %s\n", p.Processor)
			}
			b.WriteString("\n")
		}

	case domain.IntentRecommend:
		b.WriteString("Based on your requirements, here are some recommendations:\n\n")
		for i, p := range phones {
			if i == 3 {
				break
			}
			fmt.Fprintf(&b, "%d. **%s**", i+1, p.Name)
			if p.Price != nil {
				fmt.Fprintf(&b, " - ₹%d", *p.Price)
			}
			b.WriteString("\n")
			if p.Camera != "" || p.Battery != "" {
				b.WriteString("   ")
				if p.Camera != "" {
					fmt.Fprintf(&b, "%s camera, ", p.Camera)
				}
				if p.Battery != "" {
					fmt.Fprintf(&b, "%s battery", p.Battery)
				}
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}

	case domain.IntentListAll:
		b.WriteString("Here are all available phones:\n\n")
		for _, p := range phones {
			fmt.Fprintf(&b, "- %s", p.Name)
			if p.Price != nil {
				fmt.Fprintf(&b, " (₹%d)", *p.Price)
			}
			b.WriteString("\n")
		}

	default:
		fmt.Fprintf(&b, "I found %d phone(s) that might interest you:\n\n", len(phones))
		for _, p := range phones {
			fmt.Fprintf(&b, "- **%s**", p.Name)
			if p.Price != nil {
				fmt.Fprintf(&b, " - ₹%d", *p.Price)
			}
			b.WriteString("\n")
		}
		b.WriteString("\nWould you like more details about any of these phones?")
	}

	return b.String()
}
