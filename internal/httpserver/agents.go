package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"specialist-router/internal/model"
	"specialist-router/pkg/response"
)

type agentInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Runtime     string `json:"runtime,omitempty"`
}

type agentsResp struct {
	Agents map[model.AgentType]agentInfo `json:"agents"`
}

// listAgents returns the specialist catalog.
// @Summary List agents
// @Description List the specialists the router can dispatch to
// @Tags Agents
// @Produce json
// @Success 200 {object} agentsResp
// @Router /api/v1/agents [get]
func (srv *HTTPServer) listAgents(c *gin.Context) {
	descs := srv.agents.List()
	out := agentsResp{Agents: make(map[model.AgentType]agentInfo, len(descs))}
	for _, d := range descs {
		out.Agents[d.Type] = agentInfo{Name: d.Name, Description: d.Description, Runtime: d.Runtime}
	}
	response.Flat(c, http.StatusOK, out)
}
