package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"specialist-router/internal/agent"
	"specialist-router/internal/agent/dispatcher"
	"specialist-router/internal/chat"
	"specialist-router/internal/model"
	"specialist-router/internal/router"
	"specialist-router/pkg/log"
)

type mockRouter struct {
	decision  model.RoutingDecision
	lastInput router.Input
	callCount int
}

func (m *mockRouter) Decide(ctx context.Context, in router.Input) model.RoutingDecision {
	m.callCount++
	m.lastInput = in
	return m.decision
}

type mockDispatcher struct {
	result    model.InvocationResult
	lastCall  dispatcher.Call
	callCount int
}

func (m *mockDispatcher) Dispatch(ctx context.Context, call dispatcher.Call) model.InvocationResult {
	m.callCount++
	m.lastCall = call
	return m.result
}

type mockStore struct {
	saved []model.Message
	err   error
}

func (m *mockStore) PutMessage(ctx context.Context, msg model.Message) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, msg)
	return nil
}

func newTestUseCase(t *testing.T, r *mockRouter, d *mockDispatcher, s *mockStore) *implUseCase {
	t.Helper()
	agents, err := agent.Load("", model.AgentHealth)
	if err != nil {
		t.Fatalf("agent.Load: %v", err)
	}
	uc := New(agents, r, d, s, log.NewNop())
	fixed := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }
	uc.newID = func() string { return "session-test" }
	return uc
}

func TestChat(t *testing.T) {
	r := &mockRouter{decision: model.RoutingDecision{AgentType: model.AgentAppointment, Reason: model.ReasonClassification}}
	d := &mockDispatcher{result: model.InvocationResult{Text: "Booked for Tuesday.", Source: model.SourceSpecialistRuntime}}
	s := &mockStore{}
	uc := newTestUseCase(t, r, d, s)

	out, err := uc.Chat(context.Background(), chat.ChatInput{Message: "Book an appointment", UserID: "u1", SessionID: "s1"})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}

	if out.Response != "Booked for Tuesday." || out.Agent != model.AgentAppointment || out.Source != model.SourceSpecialistRuntime {
		t.Errorf("unexpected output: %+v", out)
	}
	if d.lastCall.Agent.Type != model.AgentAppointment || d.lastCall.UserID != "u1" {
		t.Errorf("unexpected dispatch call: %+v", d.lastCall)
	}
	if len(s.saved) != 2 {
		t.Fatalf("saved %d messages, want 2", len(s.saved))
	}
	user, reply := s.saved[0], s.saved[1]
	if user.Role != model.RoleUser || user.AgentType != "" || user.Content != "Book an appointment" {
		t.Errorf("unexpected user message: %+v", user)
	}
	if reply.Role != model.RoleAssistant || reply.AgentType != model.AgentAppointment {
		t.Errorf("unexpected reply message: %+v", reply)
	}
	if reply.Timestamp <= user.Timestamp {
		t.Errorf("reply timestamp %s not after user timestamp %s", reply.Timestamp, user.Timestamp)
	}
	if out.Timestamp != reply.Timestamp {
		t.Errorf("output timestamp = %s, want %s", out.Timestamp, reply.Timestamp)
	}
}

func TestChatDefaults(t *testing.T) {
	r := &mockRouter{decision: model.RoutingDecision{AgentType: model.AgentHealth, Reason: model.ReasonClassification}}
	d := &mockDispatcher{result: model.InvocationResult{Text: "ok", Source: model.SourceFoundationModelFallback}}
	uc := newTestUseCase(t, r, d, &mockStore{})

	out, err := uc.Chat(context.Background(), chat.ChatInput{Message: "hello", AgentHint: " document-agent "})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if out.UserID != model.AnonymousUserID {
		t.Errorf("user = %q, want anonymous", out.UserID)
	}
	if out.SessionID != "session-test" {
		t.Errorf("session = %q, want generated id", out.SessionID)
	}
	if r.lastInput.AgentHint != model.AgentDocument {
		t.Errorf("hint = %q, want trimmed document-agent", r.lastInput.AgentHint)
	}
}

func TestNewSessionIDFormat(t *testing.T) {
	id := newSessionID()
	if !strings.HasPrefix(id, chat.SessionPrefix) || len(id) != len(chat.SessionPrefix)+36 {
		t.Errorf("newSessionID() = %q", id)
	}
}

func TestChatRejectsBlankMessage(t *testing.T) {
	for _, msg := range []string{"", "   ", "\n\t"} {
		r := &mockRouter{}
		d := &mockDispatcher{}
		s := &mockStore{}
		uc := newTestUseCase(t, r, d, s)

		_, err := uc.Chat(context.Background(), chat.ChatInput{Message: msg})
		if !errors.Is(err, chat.ErrMessageRequired) {
			t.Errorf("Chat(%q) error = %v, want ErrMessageRequired", msg, err)
		}
		if r.callCount+d.callCount+len(s.saved) != 0 {
			t.Errorf("Chat(%q) reached downstream components", msg)
		}
	}
}

func TestChatPersistenceFailureStillAnswers(t *testing.T) {
	r := &mockRouter{decision: model.RoutingDecision{AgentType: model.AgentHealth, Reason: model.ReasonClassification}}
	d := &mockDispatcher{result: model.InvocationResult{Text: "Drink water.", Source: model.SourceSpecialistRuntime}}
	uc := newTestUseCase(t, r, d, &mockStore{err: errors.New("database is locked")})

	out, err := uc.Chat(context.Background(), chat.ChatInput{Message: "headache", SessionID: "s1"})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if out.Response != "Drink water." {
		t.Errorf("response = %q", out.Response)
	}
}

func TestChatApologyIsPersisted(t *testing.T) {
	r := &mockRouter{decision: model.RoutingDecision{AgentType: model.AgentDocument, Reason: model.ReasonExplicit}}
	d := &mockDispatcher{result: dispatcher.Apology()}
	s := &mockStore{}
	uc := newTestUseCase(t, r, d, s)

	out, err := uc.Chat(context.Background(), chat.ChatInput{Message: "read my pdf", SessionID: "s1"})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if out.Source != model.SourceFallbackApology || out.Response != dispatcher.ApologyText {
		t.Errorf("unexpected output: %+v", out)
	}
	if len(s.saved) != 2 || s.saved[1].Content != dispatcher.ApologyText {
		t.Errorf("apology not persisted: %+v", s.saved)
	}
}

func TestRoute(t *testing.T) {
	r := &mockRouter{decision: model.RoutingDecision{AgentType: model.AgentKnowledge, Reason: model.ReasonHintOverride}}
	d := &mockDispatcher{}
	uc := newTestUseCase(t, r, d, &mockStore{})

	got, err := uc.Route(context.Background(), chat.ChatInput{Message: "NDIS audit policy", AgentHint: model.AgentDocument})
	if err != nil {
		t.Fatalf("Route() error = %v", err)
	}
	if got.AgentType != model.AgentKnowledge || got.Reason != model.ReasonHintOverride {
		t.Errorf("unexpected decision: %+v", got)
	}
	if d.callCount != 0 {
		t.Error("Route must not dispatch")
	}
}
