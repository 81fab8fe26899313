package telegram

import (
	"context"
	"fmt"
	"sync"

	"swbox/internal/application"
	"swbox/internal/commands"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	platform         = "telegram"
	maxMessageLength = 4096
	updateTimeout    = 60
)

type Dispatcher interface {
	Dispatch(ctx context.Context, req commands.Request) (*commands.Response, bool)
	Prefix() string
}

type Bot struct {
	bot    *tgbotapi.BotAPI
	router Dispatcher
	logger application.Logger
	wg     sync.WaitGroup
}

func NewBot(token string, router Dispatcher, logger application.Logger) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	logger.Info("telegram bot authorized", "account", bot.Self.UserName)

	return &Bot{
		bot:    bot,
		router: router,
		logger: logger,
	}, nil
}

func (b *Bot) Name() string {
	return platform
}

func (b *Bot) Init() error {
	return nil
}

// Run reads updates until Stop is called. Every message is handled on its own
// goroutine.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = updateTimeout
	updates := b.bot.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil || update.Message.Text == "" {
			continue
		}

		msg := update.Message
		b.wg.Add(1)
		go func() {
			defer b.wg.Done()
			b.handleMessage(ctx, msg)
		}()
	}
	b.wg.Wait()
}

func (b *Bot) Stop() {
	b.bot.StopReceivingUpdates()
}
