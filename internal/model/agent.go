package model

// AgentType identifies a specialist.
type AgentType string

const (
	AgentHealth      AgentType = "health-assistant"
	AgentAppointment AgentType = "appointment-agent"
	AgentCommunity   AgentType = "community-agent"
	AgentDocument    AgentType = "document-agent"
	AgentKnowledge   AgentType = "knowledge-agent"
)

// DefaultAgent answers when nothing else matches.
const DefaultAgent = AgentHealth

// AgentFamily selects the invocation path for a specialist.
type AgentFamily string

const (
	// FamilySpecialist agents run on the hosted runtime with a foundation-model fallback.
	FamilySpecialist AgentFamily = "specialist"
	// FamilyDirect agents are reached on a dedicated backend URL.
	FamilyDirect AgentFamily = "direct"
)
