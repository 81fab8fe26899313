package discord

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"swbox/internal/application"
	"swbox/internal/commands"

	"github.com/bwmarrin/discordgo"
)

type Dispatcher interface {
	Dispatch(ctx context.Context, req commands.Request) (*commands.Response, bool)
	Prefix() string
}

type Config struct {
	Token            string
	GuildID          string
	AllowedChannelID string
}

type Bot struct {
	session  *discordgo.Session
	router   Dispatcher
	registry *commands.Registry
	logger   application.Logger

	guildID          string
	allowedChannelID string

	mu       sync.Mutex
	ctx      context.Context
	commands []*discordgo.ApplicationCommand
}

func NewBot(cfg *Config, router Dispatcher, registry *commands.Registry, logger application.Logger) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	return &Bot{
		session:          s,
		router:           router,
		registry:         registry,
		logger:           logger,
		guildID:          strings.TrimSpace(cfg.GuildID),
		allowedChannelID: strings.TrimSpace(cfg.AllowedChannelID),
		ctx:              context.Background(),
	}, nil
}

func (b *Bot) Name() string {
	return platform
}

func (b *Bot) Init() error {
	b.session.AddHandler(b.onMessage)
	b.session.AddHandler(b.onInteraction)
	b.addCommands(slashCommands(b.registry)...)
	return nil
}

func (b *Bot) Run(ctx context.Context) {
	b.mu.Lock()
	b.ctx = ctx
	b.mu.Unlock()

	if err := b.session.Open(); err != nil {
		b.logger.Error("failed to open discord session", "error", err)
		return
	}

	b.logger.Info("discord bot started, registering slash commands", "user", b.session.State.User.Username, "count", len(b.commands))

	_, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, b.guildID, b.commands)
	if err != nil {
		b.logger.Error("failed to register slash commands", "error", err)
	} else {
		b.logger.Info("slash commands registered")
	}
}

func (b *Bot) Stop() {
	if err := b.session.Close(); err != nil {
		b.logger.Warn("failed to close discord session", "error", err)
	}
}

func (b *Bot) baseContext() context.Context {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ctx
}
