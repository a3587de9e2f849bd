package domain

import "context"

// LLMClient defines how the core application talks to the external
// generation provider. Every failure mode is treated identically by callers:
// the reply degrades to the deterministic fallback composer.
type LLMClient interface {
	GenerateReply(ctx context.Context, system string, history []ConversationTurn, userMessage string) (string, error)
}

// SessionStore keeps per-conversation message history for the process lifetime.
// AppendTurns must apply all turns as one atomic update so concurrent messages
// on the same conversation never lose history.
type SessionStore interface {
	AppendTurns(id ConversationID, turns ...ConversationTurn) error
	History(id ConversationID, limit int) ([]ConversationTurn, error)
}
