// Package publish shares freshly generated font assets with a Telegram chat.
package publish

import (
	"errors"
	"fmt"
	"path/filepath"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"petbots.fbbdev.it/ttf2fnt/log"
)

var errNoToken = errors.New("missing bot token")

// Telegram uploads files as documents to ChatID. Endpoint defaults to
// tgbotapi.APIEndpoint.
type Telegram struct {
	Token    string
	ChatID   int64
	Endpoint string
}

func (t Telegram) bot() (*tgbotapi.BotAPI, error) {
	if t.Token == "" {
		return nil, errNoToken
	}

	endpoint := t.Endpoint
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}

	tgbotapi.SetLogger(log.InfoLogger)
	return tgbotapi.NewBotAPIWithAPIEndpoint(t.Token, endpoint)
}

// Send uploads every path in order and stops at the first failure. Calling it
// with no paths does not contact Telegram at all.
func (t Telegram) Send(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}

	bot, err := t.bot()
	if err != nil {
		log.ErrorLogger.Print("tgbotapi: ", err)
		return fmt.Errorf("telegram: %w", err)
	}

	bot.Debug = false

	for _, path := range paths {
		doc := tgbotapi.NewDocument(t.ChatID, tgbotapi.FilePath(path))
		doc.Caption = filepath.Base(path)

		if _, err := bot.Send(doc); err != nil {
			log.ErrorLogger.Print("tgbotapi: ", err)
			log.WarningLogger.Printf("could not send %s (chat_id=%v)", path, t.ChatID)
			return fmt.Errorf("telegram: send %s: %w", path, err)
		}

		log.InfoLogger.Printf("sent %s to chat %v", path, t.ChatID)
	}

	return nil
}
