package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// DefaultAPIEndpoint is the Bot API method URL template (token, method).
const DefaultAPIEndpoint = tgbotapi.APIEndpoint

var (
	ErrMissingToken  = errors.New("telegram: bot token is required")
	ErrMissingChatID = errors.New("telegram: chat id is required")
	ErrEmptyText     = errors.New("telegram: message text is empty")
)

// Config configures a Bot.
type Config struct {
	Token       string
	ChatID      int64
	APIEndpoint string
	HTTPClient  *http.Client
}

// Bot sends plain text messages to one chat.
type Bot struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// NewBot verifies the token with getMe and returns a Bot bound to cfg.ChatID.
func NewBot(cfg Config) (*Bot, error) {
	if cfg.Token == "" {
		return nil, ErrMissingToken
	}
	if cfg.ChatID == 0 {
		return nil, ErrMissingChatID
	}
	endpoint := cfg.APIEndpoint
	if endpoint == "" {
		endpoint = DefaultAPIEndpoint
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{}
	}

	api, err := tgbotapi.NewBotAPIWithClient(cfg.Token, endpoint, client)
	if err != nil {
		return nil, fmt.Errorf("telegram: create bot: %w", err)
	}
	return &Bot{api: api, chatID: cfg.ChatID}, nil
}

// Username is the bot account name reported by getMe.
func (b *Bot) Username() string {
	return b.api.Self.UserName
}

// SendMessage sends text to the configured chat.
func (b *Bot) SendMessage(ctx context.Context, text string) error {
	return b.SendMessageTo(ctx, b.chatID, text)
}

// SendMessageTo sends text to chatID.
func (b *Bot) SendMessageTo(ctx context.Context, chatID int64, text string) error {
	if text == "" {
		return ErrEmptyText
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.DisableWebPagePreview = true
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("telegram: sendMessage: %w", err)
	}
	return nil
}
