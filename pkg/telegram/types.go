package telegram

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// MaxMessageRunes keeps each outgoing message under Telegram's 4096 character cap.
const MaxMessageRunes = 4000

// ModeMarkdown is the legacy Markdown parse mode.
const ModeMarkdown = tgbotapi.ModeMarkdown

// Update is an incoming webhook update.
type Update = tgbotapi.Update

// Message is an incoming Telegram message.
type Message = tgbotapi.Message
