package conversation

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/phonekart/phonekart-agent/internal/app/catalog"
	"github.com/phonekart/phonekart-agent/internal/app/intent"
	"github.com/phonekart/phonekart-agent/internal/app/query"
	"github.com/phonekart/phonekart-agent/internal/app/recommend"
	"github.com/phonekart/phonekart-agent/internal/app/safety"
	"github.com/phonekart/phonekart-agent/internal/domain"
	"github.com/phonekart/phonekart-agent/internal/observability"
)

// historyWindow bounds how many stored turns are replayed into the provider
// prompt. Older turns stay in the store but are not replayed.
const historyWindow = 10

// Service runs the conversation pipeline: safety filter, intent
// classification, candidate retrieval, ranking, and response generation with
// provider fallback.
type Service struct {
	llm       domain.LLMClient
	sessions  domain.SessionStore
	extractor *query.Extractor
}

// NewService wires the pipeline. llm may be nil when no generation provider
// is configured; every reply then comes from the fallback composer.
func NewService(llm domain.LLMClient, sessions domain.SessionStore, index *catalog.Index) *Service {
	return &Service{
		llm:       llm,
		sessions:  sessions,
		extractor: query.NewExtractor(index),
	}
}

type ChatInput struct {
	ConversationID domain.ConversationID
	Message        string
}

// Chat processes one inbound message end to end. No failure inside the
// pipeline is fatal: the worst observable outcome is an unhelpful but
// well-formed reply.
func (s *Service) Chat(ctx context.Context, in ChatInput) (*domain.ChatResult, error) {
	id := in.ConversationID
	if id == "" {
		id = domain.ConversationID(uuid.NewString())
	}

	log := observability.LoggerFromContext(ctx).With().
		Str("conversation_id", string(id)).
		Logger()

	verdict := safety.Check(in.Message)
	if !verdict.Safe {
		log.Warn().Str("reason", verdict.Reason).Msg("safety check failed")
		// Refusal ends the pipeline: no intent, no candidates, no history
		// write, no provider call.
		return &domain.ChatResult{
			Message:        "I'm sorry, but I can't process that request. " + verdict.Reason,
			Safety:         verdict,
			ConversationID: id,
		}, nil
	}

	message := in.Message
	if verdict.SanitizedText != "" {
		message = verdict.SanitizedText
	}

	it := intent.Classify(message)
	candidates := s.extractor.Candidates(message, it)
	log.Debug().
		Str("intent", string(it)).
		Int("candidates", len(candidates)).
		Msg("message classified")

	result := &domain.ChatResult{
		Safety:         verdict,
		ConversationID: id,
		Intent:         it,
	}

	if it == domain.IntentRecommend && len(candidates) > 0 {
		result.Recommendations = recommend.Rank(candidates, message)
	}
	if it == domain.IntentCompare {
		result.ComparisonPhones = recommend.PickComparison(candidates)
	}

	result.Message = s.respond(ctx, log, id, it, message, candidates)

	// Both turns are recorded in one atomic append, on the provider path and
	// the fallback path alike, so multi-turn context survives provider outages.
	err := s.sessions.AppendTurns(id,
		domain.ConversationTurn{Role: domain.RoleUser, Text: message},
		domain.ConversationTurn{Role: domain.RoleAssistant, Text: result.Message},
	)
	if err != nil {
		log.Warn().Err(err).Msg("failed to record conversation turns")
	}

	return result, nil
}

func (s *Service) respond(
	ctx context.Context,
	log zerolog.Logger,
	id domain.ConversationID,
	it domain.Intent,
	message string,
	candidates []domain.Phone,
) string {
	if s.llm == nil {
		return FallbackReply(it, candidates)
	}

	history, err := s.sessions.History(id, historyWindow)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load history")
	}

	reply, err := s.llm.GenerateReply(ctx, buildSystemPrompt(it, candidates), history, message)
	if err != nil {
		log.Warn().Err(err).Msg("generation provider failed, using fallback reply")
		return FallbackReply(it, candidates)
	}
	return reply
}
