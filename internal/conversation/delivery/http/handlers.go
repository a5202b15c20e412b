package http

import (
	"github.com/gin-gonic/gin"

	"specialist-router/pkg/response"
)

// RecentChats godoc
// @Summary     List recent chats
// @Description Returns the user's most recent sessions with a preview, newest first (max 20).
// @Tags        Conversations
// @Produce     json
// @Param       userId query string true "User ID (not anonymous)"
// @Success     200 {object} recentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/conversations/recent [GET]
func (h *handler) RecentChats(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRecentReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.RecentChats(ctx, req.toInput())
	if err != nil {
		h.fail(c, "uc.RecentChats", err)
		return
	}

	response.OK(c, h.newRecentResp(output))
}

// Transcript godoc
// @Summary     Get a conversation
// @Description Returns every message of a session owned by the user, oldest first.
// @Tags        Conversations
// @Produce     json
// @Param       sessionId path  string true "Session ID"
// @Param       userId    query string true "User ID (not anonymous)"
// @Success     200 {object} transcriptResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/conversations/{sessionId} [GET]
func (h *handler) Transcript(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSessionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Transcript(ctx, req.toTranscriptInput())
	if err != nil {
		h.fail(c, "uc.Transcript", err)
		return
	}

	response.OK(c, h.newTranscriptResp(output))
}

// DeleteSession godoc
// @Summary     Delete a conversation
// @Description Removes every message of a session owned by the user.
// @Tags        Conversations
// @Produce     json
// @Param       sessionId path  string true "Session ID"
// @Param       userId    query string true "User ID (not anonymous)"
// @Success     200 {object} deleteResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/conversations/{sessionId} [DELETE]
func (h *handler) DeleteSession(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSessionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.DeleteSession(ctx, req.toDeleteInput())
	if err != nil {
		h.fail(c, "uc.DeleteSession", err)
		return
	}

	response.OK(c, h.newDeleteResp(output))
}

func (h *handler) fail(c *gin.Context, op string, err error) {
	if mapped := h.mapError(err); mapped != nil {
		response.Error(c, mapped, nil)
		return
	}
	h.l.Errorf(c.Request.Context(), "%s: %v", op, err)
	response.InternalError(c, err)
}
