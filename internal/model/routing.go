package model

// RoutingReason explains how a RoutingDecision was reached.
type RoutingReason string

const (
	ReasonExplicit       RoutingReason = "explicit"
	ReasonContinuity     RoutingReason = "continuity"
	ReasonClassification RoutingReason = "classification"
	ReasonHintOverride   RoutingReason = "hint-override"
)

// RoutingDecision is the per-request choice of specialist. Never persisted.
type RoutingDecision struct {
	AgentType AgentType
	Reason    RoutingReason
	Scores    map[AgentType]int // keyword scores when classification ran
}

// InvocationSource tags which path produced a reply.
type InvocationSource string

const (
	SourceSpecialistRuntime       InvocationSource = "specialist-runtime"
	SourceFoundationModelFallback InvocationSource = "foundation-model-fallback"
	SourceDedicatedBackend        InvocationSource = "dedicated-backend"
	SourceFallbackApology         InvocationSource = "fallback-apology"
)

// InvocationResult is what a specialist call produced.
type InvocationResult struct {
	Text   string
	Source InvocationSource
	Fields map[string]any // opaque backend fields passed through to the caller
}
