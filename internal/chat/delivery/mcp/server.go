package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"specialist-router/internal/agent"
	"specialist-router/internal/chat"
	"specialist-router/internal/conversation"
	"specialist-router/internal/model"
)

const (
	serverName    = "specialist-router"
	serverVersion = "1.0.0"
)

// Deps holds dependencies for the MCP server.
type Deps struct {
	Chat          chat.UseCase
	Conversations conversation.UseCase // optional; recent_chats is not registered when nil
	Agents        *agent.Registry
}

// NewServer creates an MCP server exposing the router as tools.
func NewServer(deps Deps) *server.MCPServer {
	s := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
		server.WithInstructions("Routes questions to health, appointment, community, document and knowledge specialists."),
		server.WithRecovery(),
	)

	s.AddTool(
		mcp.NewTool("route_message",
			mcp.WithDescription("Send a message to the best specialist and return its reply."),
			mcp.WithString("message", mcp.Description("The user's message"), mcp.Required()),
			mcp.WithString("session_id", mcp.Description("Conversation session id; a new one is created when empty")),
			mcp.WithString("user_id", mcp.Description("User id (default anonymous)")),
			mcp.WithString("agent_type", mcp.Description("Optional specialist hint, e.g. document-agent")),
		),
		routeMessage(deps),
	)

	s.AddTool(
		mcp.NewTool("list_agents",
			mcp.WithDescription("List the specialists the router can reach."),
		),
		listAgents(deps),
	)

	if deps.Conversations != nil {
		s.AddTool(
			mcp.NewTool("recent_chats",
				mcp.WithDescription("List a user's most recent conversations."),
				mcp.WithString("user_id", mcp.Description("User id"), mcp.Required()),
				mcp.WithNumber("limit", mcp.Description("Maximum number of sessions (default 20)")),
			),
			recentChats(deps),
		)
	}

	return s
}

// Serve runs s over stdio-style streams until ctx is cancelled.
func Serve(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer) error {
	err := server.NewStdioServer(s).Listen(ctx, in, out)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func routeMessage(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		message, err := req.RequireString("message")
		if err != nil {
			return toolError("message is required"), nil
		}

		out, err := deps.Chat.Chat(ctx, chat.ChatInput{
			Message:   message,
			SessionID: req.GetString("session_id", ""),
			UserID:    req.GetString("user_id", ""),
			AgentHint: model.AgentType(req.GetString("agent_type", "")),
		})
		if err != nil {
			if errors.Is(err, chat.ErrMessageRequired) {
				return toolError("message is required"), nil
			}
			return toolError(fmt.Sprintf("routing failed: %v", err)), nil
		}

		return toolJSON(map[string]any{
			"response":      out.Response,
			"agent":         out.Agent,
			"sessionId":     out.SessionID,
			"source":        out.Source,
			"routingReason": out.Reason,
		})
	}
}

func listAgents(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		type agentInfo struct {
			Type        model.AgentType `json:"type"`
			Name        string          `json:"name"`
			Description string          `json:"description"`
		}

		descs := deps.Agents.List()
		infos := make([]agentInfo, len(descs))
		for i, d := range descs {
			infos[i] = agentInfo{Type: d.Type, Name: d.Name, Description: d.Description}
		}
		return toolJSON(infos)
	}
}

func recentChats(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		userID, err := req.RequireString("user_id")
		if err != nil {
			return toolError("user_id is required"), nil
		}

		out, err := deps.Conversations.RecentChats(ctx, conversation.RecentChatsInput{UserID: userID})
		if err != nil {
			if errors.Is(err, conversation.ErrUserIDRequired) {
				return toolError("user_id is required and cannot be anonymous"), nil
			}
			return toolError(fmt.Sprintf("recent chats failed: %v", err)), nil
		}

		chats := out.Chats
		if limit := req.GetInt("limit", 0); limit > 0 && limit < len(chats) {
			chats = chats[:limit]
		}

		type chatInfo struct {
			SessionID    string          `json:"session_id"`
			Preview      string          `json:"preview"`
			AgentType    model.AgentType `json:"agent_type"`
			LastActivity string          `json:"last_activity"`
		}
		infos := make([]chatInfo, len(chats))
		for i, c := range chats {
			infos[i] = chatInfo{SessionID: c.SessionID, Preview: c.Preview, AgentType: c.AgentType, LastActivity: c.LastActivity}
		}
		return toolJSON(infos)
	}
}

func toolJSON(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return toolError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return toolText(string(b)), nil
}

func toolText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

func toolError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}
