package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"specialist-router/config"
	"specialist-router/internal/agent"
	"specialist-router/internal/chat"
	"specialist-router/internal/conversation"
	"specialist-router/internal/middleware"
	"specialist-router/internal/model"
	"specialist-router/pkg/log"
)

type mockChatUseCase struct {
	callCount int
}

func (m *mockChatUseCase) Chat(ctx context.Context, input chat.ChatInput) (chat.ChatOutput, error) {
	m.callCount++
	return chat.ChatOutput{
		Response:  "ok",
		Agent:     model.AgentHealth,
		SessionID: "session-1",
		UserID:    input.UserID,
		Timestamp: "2026-01-01T00:00:00.000000000Z",
		Source:    model.SourceSpecialistRuntime,
		Reason:    model.ReasonClassification,
	}, nil
}

func (m *mockChatUseCase) Route(ctx context.Context, input chat.ChatInput) (model.RoutingDecision, error) {
	return model.RoutingDecision{AgentType: model.AgentHealth}, nil
}

type mockConversationUseCase struct{}

func (m *mockConversationUseCase) RecentChats(ctx context.Context, input conversation.RecentChatsInput) (conversation.RecentChatsOutput, error) {
	return conversation.RecentChatsOutput{}, nil
}

func (m *mockConversationUseCase) Transcript(ctx context.Context, input conversation.TranscriptInput) (conversation.TranscriptOutput, error) {
	return conversation.TranscriptOutput{SessionID: input.SessionID}, nil
}

func (m *mockConversationUseCase) DeleteSession(ctx context.Context, input conversation.DeleteSessionInput) (conversation.DeleteSessionOutput, error) {
	return conversation.DeleteSessionOutput{SessionID: input.SessionID}, nil
}

func (m *mockConversationUseCase) SweepExpired(ctx context.Context) (int, error) {
	return 0, nil
}

func newTestServer(t *testing.T, rl config.RateLimitConfig) (*HTTPServer, *mockChatUseCase) {
	t.Helper()
	agents, err := agent.Load("", model.DefaultAgent)
	if err != nil {
		t.Fatalf("agent.Load: %v", err)
	}
	uc := &mockChatUseCase{}
	l := log.NewNop()
	srv, err := New(l, Config{
		Logger:         l,
		Port:           8080,
		Mode:           gin.TestMode,
		Environment:    "test",
		Middleware:     middleware.New(l, rl),
		Agents:         agents,
		ChatUC:         uc,
		ConversationUC: &mockConversationUseCase{},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv, uc
}

func serve(srv *HTTPServer, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestNewValidation(t *testing.T) {
	if _, err := New(log.NewNop(), Config{Port: 8080, Mode: gin.TestMode}); err == nil {
		t.Error("expected error for missing dependencies")
	}
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t, config.RateLimitConfig{})

	w := serve(srv, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var got healthResp
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Status != "healthy" || len(got.Agents) != 5 || got.Timestamp == "" {
		t.Errorf("unexpected health body: %+v", got)
	}
	if w.Header().Get(middleware.HeaderRequestID) == "" {
		t.Error("expected request id header")
	}
}

func TestListAgents(t *testing.T) {
	srv, _ := newTestServer(t, config.RateLimitConfig{})

	w := serve(srv, http.MethodGet, "/api/v1/agents", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var got agentsResp
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got.Agents) != 5 {
		t.Fatalf("expected 5 agents, got %d", len(got.Agents))
	}
	if got.Agents[model.AgentDocument].Name == "" {
		t.Error("document agent has no name")
	}
}

func TestChatRouteIsRateLimited(t *testing.T) {
	srv, uc := newTestServer(t, config.RateLimitConfig{Enabled: true, RequestsPerMin: 10})

	first := serve(srv, http.MethodPost, "/api/v1/chat", `{"message":"hi","userId":"u1"}`)
	second := serve(srv, http.MethodPost, "/api/v1/chat", `{"message":"hi","userId":"u1"}`)

	if first.Code != http.StatusOK {
		t.Errorf("first: expected 200, got %d", first.Code)
	}
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("second: expected 429, got %d", second.Code)
	}
	if uc.callCount != 1 {
		t.Errorf("expected 1 chat call, got %d", uc.callCount)
	}
}

func TestRecoveryReturnsGenericError(t *testing.T) {
	srv, _ := newTestServer(t, config.RateLimitConfig{})
	srv.Handler().GET("/boom", func(c *gin.Context) { panic("boom") })

	w := serve(srv, http.MethodGet, "/boom", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var got map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["error"] != errInternal || got["message"] != errInternalDetail {
		t.Errorf("unexpected body: %v", got)
	}
}

func TestConversationRoutesRegistered(t *testing.T) {
	srv, _ := newTestServer(t, config.RateLimitConfig{})

	w := serve(srv, http.MethodDelete, "/api/v1/conversations/s1?userId=u1", "")
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}
