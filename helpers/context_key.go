package helpers

// ContextKey is a type for creating context keys
type ContextKey string

// ContextKeyCampaign is a specific key for identifying "campaign" contexts added to the http request
var ContextKeyCampaign = ContextKey("campaign")
