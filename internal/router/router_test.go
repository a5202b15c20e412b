package router

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/goleak"

	"specialist-router/internal/agent"
	"specialist-router/internal/conversation/repository"
	"specialist-router/internal/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

type mockHistory struct {
	msgs      []model.Message
	err       error
	callCount int
	lastOpt   repository.QueryBySessionOptions
}

func (m *mockHistory) QueryBySession(ctx context.Context, opt repository.QueryBySessionOptions) ([]model.Message, error) {
	m.callCount++
	m.lastOpt = opt
	return m.msgs, m.err
}

func mustRegistry(t *testing.T) *agent.Registry {
	t.Helper()
	r, err := agent.Load("", model.AgentHealth)
	if err != nil {
		t.Fatalf("agent.Load: %v", err)
	}
	return r
}

func assistantTurn(agentType model.AgentType) model.Message {
	return model.Message{SessionID: "s1", Role: model.RoleAssistant, AgentType: agentType, Content: "..."}
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestClassify(t *testing.T) {
	agents := mustRegistry(t)

	tests := []struct {
		name    string
		message string
		want    model.AgentType
	}{
		{name: "appointment keywords", message: "I need to schedule a dentist appointment tomorrow", want: model.AgentAppointment},
		{name: "health keywords", message: "I have a terrible headache and fever", want: model.AgentHealth},
		{name: "community keywords", message: "Any research articles or studies from the community forum?", want: model.AgentCommunity},
		{name: "knowledge keywords", message: "Which NDIS audit policy applies to us?", want: model.AgentKnowledge},
		{name: "case insensitive", message: "RESCHEDULE MY APPOINTMENT", want: model.AgentAppointment},
		{name: "no keywords falls back to default", message: "hello there", want: model.AgentHealth},
		{name: "empty message", message: "", want: model.AgentHealth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Classify(agents, tt.message)
			if got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.message, got, tt.want)
			}
		})
	}
}

func TestClassifyTieGoesToFirstInOrder(t *testing.T) {
	agents, err := agent.NewRegistry([]agent.Descriptor{
		{Type: "first", Keywords: []string{"alpha"}},
		{Type: "second", Keywords: []string{"beta"}},
		{Type: "fallback"},
	}, "fallback")
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	got, scores := Classify(agents, "alpha and beta")
	if got != "first" {
		t.Errorf("tie should go to first in order, got %s", got)
	}
	if scores["first"] != 1 || scores["second"] != 1 {
		t.Errorf("unexpected scores: %v", scores)
	}
}

func TestIsFollowUp(t *testing.T) {
	tests := []struct {
		message string
		want    bool
	}{
		{"sure", true},
		{"That works for me, thanks a lot for checking", true},
		{"what about next Tuesday then?", true},
		{"I would like to schedule an appointment tomorrow evening", false},
	}

	for _, tt := range tests {
		if got := IsFollowUp(tt.message); got != tt.want {
			t.Errorf("IsFollowUp(%q) = %v, want %v", tt.message, got, tt.want)
		}
	}
}

func TestDecide(t *testing.T) {
	agents := mustRegistry(t)
	ctx := context.Background()

	tests := []struct {
		name       string
		history    *mockHistory
		in         Input
		wantAgent  model.AgentType
		wantReason model.RoutingReason
		wantReads  int
	}{
		{
			name:       "explicit hint wins",
			history:    &mockHistory{},
			in:         Input{Message: "I have a headache", SessionID: "s1", AgentHint: model.AgentCommunity},
			wantAgent:  model.AgentCommunity,
			wantReason: model.ReasonExplicit,
			wantReads:  0,
		},
		{
			name:       "document hint overridden by knowledge content",
			history:    &mockHistory{},
			in:         Input{Message: "What are the NDIS compliance audit requirements in this document?", SessionID: "s1", AgentHint: model.AgentDocument},
			wantAgent:  model.AgentKnowledge,
			wantReason: model.ReasonHintOverride,
		},
		{
			name:       "document hint kept for document content",
			history:    &mockHistory{},
			in:         Input{Message: "Who is this document addressed to?", SessionID: "s1", AgentHint: model.AgentDocument},
			wantAgent:  model.AgentDocument,
			wantReason: model.ReasonExplicit,
		},
		{
			name:       "unknown hint falls through to classification",
			history:    &mockHistory{},
			in:         Input{Message: "I need to schedule a dentist appointment tomorrow", SessionID: "s1", AgentHint: "pirate-agent"},
			wantAgent:  model.AgentAppointment,
			wantReason: model.ReasonClassification,
			wantReads:  1,
		},
		{
			name: "acknowledgement continues previous specialist",
			history: &mockHistory{msgs: []model.Message{
				{Role: model.RoleUser, Content: "sure"},
				assistantTurn(model.AgentCommunity),
				assistantTurn(model.AgentHealth),
			}},
			in:         Input{Message: "sure", SessionID: "s1"},
			wantAgent:  model.AgentCommunity,
			wantReason: model.ReasonContinuity,
			wantReads:  1,
		},
		{
			name:       "long message reclassifies",
			history:    &mockHistory{msgs: []model.Message{assistantTurn(model.AgentCommunity)}},
			in:         Input{Message: "I would like to schedule an appointment tomorrow evening", SessionID: "s1"},
			wantAgent:  model.AgentAppointment,
			wantReason: model.ReasonClassification,
			wantReads:  1,
		},
		{
			name:       "unknown previous specialist is ignored",
			history:    &mockHistory{msgs: []model.Message{assistantTurn("retired-agent")}},
			in:         Input{Message: "sure", SessionID: "s1"},
			wantAgent:  model.AgentHealth,
			wantReason: model.ReasonClassification,
			wantReads:  1,
		},
		{
			name:       "store failure degrades to classification",
			history:    &mockHistory{err: errors.New("store down")},
			in:         Input{Message: "ok", SessionID: "s1"},
			wantAgent:  model.AgentHealth,
			wantReason: model.ReasonClassification,
			wantReads:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(agents, tt.history, &mockLogger{})
			got := r.Decide(ctx, tt.in)

			if got.AgentType != tt.wantAgent {
				t.Errorf("agent = %s, want %s", got.AgentType, tt.wantAgent)
			}
			if got.Reason != tt.wantReason {
				t.Errorf("reason = %s, want %s", got.Reason, tt.wantReason)
			}
			if tt.wantReads > 0 && tt.history.callCount != tt.wantReads {
				t.Errorf("history reads = %d, want %d", tt.history.callCount, tt.wantReads)
			}
			if tt.wantReason == model.ReasonExplicit && tt.history.callCount != 0 {
				t.Errorf("explicit hint should not read history, got %d reads", tt.history.callCount)
			}
		})
	}
}

func TestDecideReadsContinuityWindow(t *testing.T) {
	h := &mockHistory{}
	r := New(mustRegistry(t), h, &mockLogger{})

	r.Decide(context.Background(), Input{Message: "sure", SessionID: "s9"})

	if h.lastOpt.Limit != ContinuityWindow || !h.lastOpt.MostRecentFirst || h.lastOpt.SessionID != "s9" {
		t.Errorf("unexpected history query: %+v", h.lastOpt)
	}
}

func TestDecideWithoutHistory(t *testing.T) {
	r := New(mustRegistry(t), nil, &mockLogger{})
	got := r.Decide(context.Background(), Input{Message: "sure"})
	if got.AgentType != model.AgentHealth || got.Reason != model.ReasonClassification {
		t.Errorf("unexpected decision %+v", got)
	}
}
