package domain

// ConversationID identifies a single conversation thread.
type ConversationID string

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Intent is the closed category describing what the user wants.
// Classification is total: every message maps to exactly one intent.
type Intent string

const (
	IntentCompare         Intent = "compare"
	IntentRecommend       Intent = "recommend"
	IntentSearchByPrice   Intent = "search_by_price"
	IntentSearchByBrand   Intent = "search_by_brand"
	IntentSearchByFeature Intent = "search_by_feature"
	IntentListAll         Intent = "list_all"
	IntentGeneral         Intent = "general"
)
