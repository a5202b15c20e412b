package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processRecentReq(c *gin.Context) (recentReq, error) {
	var req recentReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processSessionReq(c *gin.Context) (sessionReq, error) {
	var req sessionReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.SessionID = c.Param("sessionId")
	return req, nil
}
