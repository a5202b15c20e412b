package dispatcher

import "time"

// ApologyText is returned when every strategy failed.
const ApologyText = "I apologize, but I'm unable to process your request at the moment. Please try again later."

const (
	DefaultRuntimeTimeout = 30 * time.Second
	DefaultBackendTimeout = 60 * time.Second
	DefaultRoutedFrom     = "agent-router"
)

// Context builder limits.
const (
	ContextFetchLimit   = 10
	ContextKeepMessages = 6
	ContextMaxChars     = 200
)

// Foundation model generation settings.
const (
	fmTemperature = 0.7
	fmMaxTokens   = 500
)

const maxErrorBody = 512
