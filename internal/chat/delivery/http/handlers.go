package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"specialist-router/pkg/response"
)

// Chat godoc
// @Summary     Route a chat message
// @Description Routes a message to the best specialist, records the turn and returns the reply.
// @Description Backend-specific fields are passed through as extra top-level keys.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body     chatReq true "Chat message"
// @Success     200  {object} chatResp
// @Failure     400  {object} errorResp "Message is required"
// @Failure     429  {object} response.Resp "Too many requests"
// @Failure     500  {object} errorResp "Internal server error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.chat.delivery.http.Chat: bad body: %v", err)
		response.FlatError(c, http.StatusBadRequest, errInvalidBody, "")
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		if mapped := h.mapError(err); mapped != nil {
			response.FlatError(c, mapped.Status, mapped.Message, "")
			return
		}
		h.l.Errorf(ctx, "internal.chat.delivery.http.Chat: uc.Chat: %v", err)
		response.FlatError(c, http.StatusInternalServerError, errInternal, errInternalDetail)
		return
	}

	response.Flat(c, http.StatusOK, h.newChatResp(output))
}
