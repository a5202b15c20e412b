package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "specialist-router/internal/chat/delivery/http"
	conversationHTTP "specialist-router/internal/conversation/delivery/http"
	"specialist-router/internal/model"
	"specialist-router/pkg/response"
)

const (
	errInternal       = "Internal server error"
	errInternalDetail = "Failed to process agent request"
)

func (srv *HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(srv.recovery())
	srv.gin.Use(srv.mw.RequestID())
	srv.gin.Use(srv.mw.CORS())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

// recovery turns panics into the generic chat error body.
func (srv *HTTPServer) recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		srv.l.Errorf(c.Request.Context(), "internal.httpserver.recovery: panic: %v", recovered)
		response.FlatError(c, http.StatusInternalServerError, errInternal, errInternalDetail)
	})
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	api.GET("/agents", srv.listAgents)

	chatHTTP.RegisterRoutes(api, chatHTTP.New(srv.l, srv.chatUC), srv.mw.RateLimit())
	conversationHTTP.RegisterRoutes(api, conversationHTTP.New(srv.l, srv.conversationUC))

	if srv.telegramHandler != nil {
		srv.gin.POST("/webhook/telegram", srv.telegramHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}
}
