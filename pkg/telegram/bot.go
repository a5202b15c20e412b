package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot is a thin wrapper over the Telegram Bot API client.
type Bot struct {
	api *tgbotapi.BotAPI
}

// NewBot creates a Bot for token against the public Bot API.
func NewBot(token string) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram: failed to create bot: %w", err)
	}
	return &Bot{api: api}, nil
}

// NewBotWithEndpoint creates a Bot against a custom API endpoint, formatted like tgbotapi.APIEndpoint.
func NewBotWithEndpoint(token, endpoint string, client tgbotapi.HTTPClient) (*Bot, error) {
	api, err := tgbotapi.NewBotAPIWithClient(token, endpoint, client)
	if err != nil {
		return nil, fmt.Errorf("telegram: failed to create bot: %w", err)
	}
	return &Bot{api: api}, nil
}

// Username returns the bot's username as reported by getMe.
func (b *Bot) Username() string {
	return b.api.Self.UserName
}

// SetWebhook registers the webhook URL with Telegram.
func (b *Bot) SetWebhook(webhookURL string) error {
	wh, err := tgbotapi.NewWebhook(webhookURL)
	if err != nil {
		return fmt.Errorf("telegram: invalid webhook url: %w", err)
	}
	if _, err := b.api.Request(wh); err != nil {
		return fmt.Errorf("telegram setWebhook failed: %w", err)
	}
	return nil
}

// SendMessage sends plain text, split into chunks Telegram accepts.
func (b *Bot) SendMessage(chatID int64, text string) error {
	return b.SendMessageWithMode(chatID, text, "")
}

// SendMessageWithMode sends text with an optional parse mode (e.g. tgbotapi.ModeMarkdown).
func (b *Bot) SendMessageWithMode(chatID int64, text string, parseMode string) error {
	for _, chunk := range SplitText(text, MaxMessageRunes) {
		msg := tgbotapi.NewMessage(chatID, chunk)
		msg.ParseMode = parseMode
		if _, err := b.api.Send(msg); err != nil {
			return fmt.Errorf("telegram sendMessage failed: %w", err)
		}
	}
	return nil
}

// SendTyping shows the typing indicator in chatID.
func (b *Bot) SendTyping(chatID int64) error {
	_, err := b.api.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping))
	return err
}

// SplitText cuts text into chunks of at most size runes.
func SplitText(text string, size int) []string {
	runes := []rune(text)
	if size <= 0 || len(runes) <= size {
		return []string{text}
	}

	chunks := make([]string, 0, len(runes)/size+1)
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
