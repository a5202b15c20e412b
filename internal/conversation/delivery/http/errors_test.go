package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"specialist-router/internal/conversation"
	"specialist-router/pkg/log"
)

func TestMapError(t *testing.T) {
	h := &handler{l: log.NewNop()}

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "user id", err: conversation.ErrUserIDRequired, wantStatus: http.StatusBadRequest, wantMsg: "User ID is required"},
		{name: "wrapped session id", err: fmt.Errorf("uc: %w", conversation.ErrSessionIDRequired), wantStatus: http.StatusBadRequest, wantMsg: "Session ID is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := h.mapError(tt.err)
			if got == nil {
				t.Fatal("expected mapped error")
			}
			if got.Status != tt.wantStatus || got.Message != tt.wantMsg {
				t.Errorf("got %d %q, want %d %q", got.Status, got.Message, tt.wantStatus, tt.wantMsg)
			}
		})
	}

	t.Run("unknown error is unmapped", func(t *testing.T) {
		if got := h.mapError(errors.New("store down")); got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})
}
