package conversation

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	RecentChats(ctx context.Context, input RecentChatsInput) (RecentChatsOutput, error)
	Transcript(ctx context.Context, input TranscriptInput) (TranscriptOutput, error)
	DeleteSession(ctx context.Context, input DeleteSessionInput) (DeleteSessionOutput, error)

	// SweepExpired removes messages past their TTL.
	SweepExpired(ctx context.Context) (int, error)
}
