package main

import (
	"context"
	"database/sql"
	"embed"
	"os"
	"os/signal"
	"syscall"

	"swbox/internal/application"
	"swbox/internal/commands"
	"swbox/internal/delivery/discord"
	"swbox/internal/delivery/telegram"
	"swbox/internal/repository"
	"swbox/internal/upstream"
	"swbox/pkg/config"
	"swbox/pkg/logger"
	service "swbox/pkg/services"
	"swbox/pkg/sheets"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

func main() {
	_ = godotenv.Load()

	cfg := config.Config{}
	if err := config.ReadEnvConfig(&cfg); err != nil {
		panic(err)
	}

	log := logger.NewLogger(&logger.Config{Level: cfg.LogLevel})

	var repos *repository.Repository
	if cfg.Repo.Enabled() {
		db, err := repository.NewPostgresDB(&cfg.Repo)
		if err != nil {
			log.Error("failed to init db", "error", err)
			return
		}
		defer db.Close()

		if !migrate(db, log) {
			return
		}
		repos = repository.NewRepository(db)
	} else {
		log.Info("no database configured, keeping command log in memory", "capacity", cfg.UsageLogSize)
		repos = repository.NewMemoryRepository(cfg.UsageLogSize)
	}

	var sheetsClient application.SheetsClient
	if cfg.Sheets.Enabled() {
		gs, err := sheets.NewGoogleSheetsClient(context.Background(), cfg.Sheets.CredentialsFile)
		if err != nil {
			log.Error("failed to init google sheets", "error", err)
			return
		}
		sheetsClient = gs
	}

	client := upstream.NewClient(&cfg.Upstream)
	services := application.NewService(client, repos, sheetsClient, &cfg.Application, log.With("component", "application"))

	registry := commands.NewRegistry()
	loader := commands.NewLoader(cfg.GroupsDir, registry, commands.Env{Services: services}, log.With("component", "loader"))
	for name, factory := range commands.DefaultCatalog() {
		loader.Register(name, factory)
	}
	if err := loader.LoadAll(); err != nil {
		log.Warn("some command groups failed to load", "error", err)
	}
	log.Info("command groups bound", "groups", registry.Groups())

	router := commands.NewRouter(registry, services.UsageService, commands.RouterConfig{
		Prefix:  cfg.CommandPrefix,
		Owners:  cfg.OwnerIDs,
		Timeout: cfg.CommandTimeout,
	}, log.With("component", "router"))

	manager := service.NewManager(log)

	discordBot, err := discord.NewBot(&discord.Config{
		Token:            cfg.DiscordToken,
		GuildID:          cfg.DiscordGuildID,
		AllowedChannelID: cfg.DiscordChannelID,
	}, router, registry, log.With("component", "discord"))
	if err != nil {
		log.Error("failed to init discord bot", "error", err)
		return
	}
	manager.AddService(discordBot)

	if cfg.TelegramToken != "" {
		telegramBot, err := telegram.NewBot(cfg.TelegramToken, router, log.With("component", "telegram"))
		if err != nil {
			log.Error("failed to init telegram bot", "error", err)
			return
		}
		manager.AddService(telegramBot)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := manager.Run(ctx); err != nil {
		log.Error("services stopped with error", "error", err)
		return
	}
	log.Info("bot stopped")
}

func migrate(db *sql.DB, log *logger.Logger) bool {
	log.Info("running migrations")
	version, err := repository.RunMigrations(db, migrationFS, "migrations")
	if err != nil {
		log.Error("failed to run migrations", "error", err)
		return false
	}
	log.Info("migrations applied", "version", version)
	return true
}
