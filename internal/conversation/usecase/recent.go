package usecase

import (
	"context"
	"fmt"
	"sort"

	"specialist-router/internal/conversation"
	"specialist-router/internal/conversation/repository"
	"specialist-router/internal/model"
)

// RecentChats groups the user's latest rows by session, newest session first.
func (uc *implUseCase) RecentChats(ctx context.Context, input conversation.RecentChatsInput) (conversation.RecentChatsOutput, error) {
	if err := validUserID(input.UserID); err != nil {
		return conversation.RecentChatsOutput{}, err
	}

	msgs, err := uc.repo.QueryByUser(ctx, repository.QueryByUserOptions{
		UserID: input.UserID,
		Limit:  recentScanLimit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.conversation.usecase.RecentChats: %v", err)
		return conversation.RecentChatsOutput{}, fmt.Errorf("query recent chats: %w", err)
	}

	return conversation.RecentChatsOutput{Chats: summarise(msgs)}, nil
}

type sessionSummary struct {
	chat          conversation.RecentChat
	hasUserText   bool
	assistantText string
}

// summarise expects msgs most recent first.
func summarise(msgs []model.Message) []conversation.RecentChat {
	bySession := make(map[string]*sessionSummary)
	var order []string

	for _, m := range msgs {
		s, ok := bySession[m.SessionID]
		if !ok {
			s = &sessionSummary{chat: conversation.RecentChat{
				SessionID:       m.SessionID,
				LastMessageTime: m.Timestamp,
				LastActivity:    lastActivity(m.Timestamp),
			}}
			bySession[m.SessionID] = s
			order = append(order, m.SessionID)
		}
		if m.Timestamp > s.chat.LastMessageTime {
			s.chat.LastMessageTime = m.Timestamp
			s.chat.LastActivity = lastActivity(m.Timestamp)
		}

		switch m.Role {
		case model.RoleUser:
			if !s.hasUserText {
				s.chat.Preview = preview(m.Content)
				s.hasUserText = true
			}
		case model.RoleAssistant:
			if s.assistantText == "" {
				s.assistantText = preview(m.Content)
			}
			if s.chat.AgentType == "" && m.AgentType != "" {
				s.chat.AgentType = m.AgentType
			}
		}
	}

	chats := make([]conversation.RecentChat, 0, len(order))
	for _, id := range order {
		s := bySession[id]
		if !s.hasUserText {
			s.chat.Preview = s.assistantText
		}
		if s.chat.AgentType == "" {
			s.chat.AgentType = model.DefaultAgent
		}
		chats = append(chats, s.chat)
	}

	sort.SliceStable(chats, func(i, j int) bool {
		return chats[i].LastMessageTime > chats[j].LastMessageTime
	})
	if len(chats) > maxRecentChats {
		chats = chats[:maxRecentChats]
	}
	return chats
}
