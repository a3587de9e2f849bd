package safety

import (
	"regexp"
	"strings"

	"github.com/phonekart/phonekart-agent/internal/domain"
)

const maxMessageLength = 1000

// deniedTerms block a message outright when present anywhere in it.
var deniedTerms = []string{"hack", "crack", "illegal", "scam"}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

const (
	ReasonTooLong = "Message is too long. Please keep it under 1000 characters."
	ReasonBlocked = "The message contains content that cannot be processed."
)

// Check runs the ordered safety checks over an inbound message, short-circuiting
// on the first failure: length, denied terms, then markup stripping. Stripping
// does not make a message unsafe; it only sets the sanitized text when the
// message changed.
func Check(message string) domain.SafetyVerdict {
	if len(message) > maxMessageLength {
		return domain.SafetyVerdict{Safe: false, Reason: ReasonTooLong}
	}

	lower := strings.ToLower(message)
	for _, term := range deniedTerms {
		if strings.Contains(lower, term) {
			return domain.SafetyVerdict{Safe: false, Reason: ReasonBlocked}
		}
	}

	verdict := domain.SafetyVerdict{Safe: true}
	if sanitized := tagPattern.ReplaceAllString(message, ""); sanitized != message {
		verdict.SanitizedText = sanitized
	}
	return verdict
}
