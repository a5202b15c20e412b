package repository

// QueryBySessionOptions selects messages of one session.
// A non-empty UserID restricts results to that user's rows.
type QueryBySessionOptions struct {
	SessionID       string
	UserID          string
	Limit           int // 0 means no limit
	MostRecentFirst bool
}

// QueryByUserOptions selects a user's messages across sessions, most recent first.
type QueryByUserOptions struct {
	UserID string
	Limit  int
}

// DeleteSessionOptions removes one session's messages owned by UserID.
type DeleteSessionOptions struct {
	SessionID string
	UserID    string
}
