package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"specialist-router/internal/agent"
	"specialist-router/internal/chat"
	tgDelivery "specialist-router/internal/chat/delivery/telegram"
	"specialist-router/internal/conversation"
	"specialist-router/internal/middleware"
	"specialist-router/pkg/log"
)

const (
	readTimeout     = 30 * time.Second
	writeTimeout    = 90 * time.Second
	idleTimeout     = 120 * time.Second
	shutdownTimeout = 10 * time.Second
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Domains
	agents          *agent.Registry
	chatUC          chat.UseCase
	conversationUC  conversation.UseCase
	telegramHandler tgDelivery.Handler // optional
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	Agents          *agent.Registry
	ChatUC          chat.UseCase
	ConversationUC  conversation.UseCase
	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              cfg.Middleware,
		agents:          cfg.Agents,
		chatUC:          cfg.ChatUC,
		conversationUC:  cfg.ConversationUC,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.agents == nil {
		return errors.New("agent registry is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat usecase is required")
	}
	if srv.conversationUC == nil {
		return errors.New("conversation usecase is required")
	}
	return nil
}
