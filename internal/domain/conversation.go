package domain

// SafetyVerdict is produced per inbound message and never persisted.
type SafetyVerdict struct {
	Safe          bool   `json:"safe"`
	Reason        string `json:"reason,omitempty"`
	SanitizedText string `json:"sanitizedText,omitempty"`
}

// ConversationTurn is a single user or assistant message in a conversation.
type ConversationTurn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// ChatResult is the caller-facing outcome of one processed message.
// Recommendations is populated only for the recommend intent with non-empty
// candidates; ComparisonPhones only for the compare intent.
type ChatResult struct {
	Message          string           `json:"message"`
	Recommendations  []Recommendation `json:"recommendations,omitempty"`
	ComparisonPhones []Phone          `json:"comparisonPhones,omitempty"`
	Safety           SafetyVerdict    `json:"safetyResult"`
	ConversationID   ConversationID   `json:"conversationId"`
	Intent           Intent           `json:"intent,omitempty"`
}
