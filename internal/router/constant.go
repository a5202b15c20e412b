package router

// Log prefixes
const (
	LogPrefixDecide     = "internal.router.Decide"
	LogPrefixContinuity = "internal.router.resolveContinuity"
)

// Continuity configuration
const (
	// ContinuityWindow is how many recent messages are inspected for the last specialist.
	ContinuityWindow = 4
	// ShortReplyMaxWords marks a reply short enough to be a follow-up.
	ShortReplyMaxWords = 5
)

// continuationPhrases are acknowledgement substrings that keep the current specialist.
var continuationPhrases = []string{
	"yes", "no", "ok", "sure", "that works", "sounds good", "perfect", "great",
}
