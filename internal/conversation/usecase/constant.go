package usecase

const (
	// recentScanLimit bounds how many of a user's rows are read to build the chat list.
	recentScanLimit = 100
	maxRecentChats  = 20
	previewMaxChars = 100
	activityLayout  = "2006-01-02 15:04"
)
