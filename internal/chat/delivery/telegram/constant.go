package telegram

const (
	cmdStart = "/start"
	cmdHelp  = "/help"
	cmdReset = "/reset"

	sessionPrefix = "telegram-"
	userPrefix    = "telegram_"
)

const (
	startText = "👋 *Welcome!*\n\nAsk me anything about your health, appointments, community services, your documents or NDIS rules. " +
		"I'll pass your question to the right specialist.\n\n_Example: \"Remind me to take my medication at 8am\"_"
	helpText = "*How to use:*\n\nJust type your question. Conversations are remembered so follow-ups like \"yes\" or \"sounds good\" " +
		"stay with the same specialist.\n\n`/reset` starts a fresh conversation."
	resetText      = "🧹 Conversation cleared. What would you like to talk about?"
	resetFailed    = "Could not clear the conversation right now. Please try again."
	processingFail = "Something went wrong while handling your message. Please try again."
)
