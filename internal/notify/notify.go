// Package notify delivers best-effort chat notifications for attendance
// events. Delivery runs detached from the caller: failures are logged and
// discarded, never propagated, and no mutation waits on a send.
package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier sends a formatted text message to an external chat channel.
type Notifier interface {
	Notify(message string)
}

// Nop discards every message. Used when no channel is configured.
type Nop struct{}

func (Nop) Notify(string) {}

// DiscordWebhook posts messages to a Discord-compatible webhook URL.
type DiscordWebhook struct {
	url    string
	client *http.Client
}

func NewDiscordWebhook(url string) *DiscordWebhook {
	return &DiscordWebhook{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (d *DiscordWebhook) Notify(message string) {
	go func() {
		if err := d.send(message); err != nil {
			log.Printf("discord notification failed: %v", err)
		}
	}()
}

func (d *DiscordWebhook) send(message string) error {
	payload, err := json.Marshal(map[string]string{"content": message})
	if err != nil {
		return err
	}
	resp, err := d.client.Post(d.url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook returned %s", resp.Status)
	}
	return nil
}

// Telegram sends messages to a fixed chat through the Bot API.
type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegram(token string, chatID int64) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("connecting telegram bot: %w", err)
	}
	return &Telegram{bot: bot, chatID: chatID}, nil
}

func (t *Telegram) Notify(message string) {
	go func() {
		msg := tgbotapi.NewMessage(t.chatID, message)
		msg.ParseMode = tgbotapi.ModeMarkdown
		if _, err := t.bot.Send(msg); err != nil {
			log.Printf("telegram notification failed: %v", err)
		}
	}()
}

// Multi fans a message out to several channels.
type Multi []Notifier

func (m Multi) Notify(message string) {
	for _, n := range m {
		n.Notify(message)
	}
}
