package config

import (
	"fmt"
	"time"

	"swbox/internal/application"
	"swbox/internal/repository"
	"swbox/internal/upstream"
	"swbox/pkg/sheets"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Repo        repository.Config `envPrefix:"REPO_"`
	Upstream    upstream.Config
	Application application.Config
	Sheets      sheets.Config

	DiscordToken     string `env:"DISCORD_TOKEN,required,notEmpty"`
	DiscordGuildID   string `env:"DISCORD_GUILD_ID" envDefault:""`
	DiscordChannelID string `env:"DISCORD_ALLOWED_CHANNEL_ID" envDefault:""`
	TelegramToken    string `env:"TELEGRAM_TOKEN" envDefault:""`
	LogLevel         string `env:"LOGGER_LEVEL" envDefault:"debug"`

	// OwnerIDs are "platform:id" pairs, e.g. "discord:191600000000000000".
	OwnerIDs       []string      `env:"OWNER_IDS" envSeparator:"," envDefault:""`
	CommandPrefix  string        `env:"COMMAND_PREFIX" envDefault:"!"`
	CommandTimeout time.Duration `env:"COMMAND_TIMEOUT" envDefault:"30s"`
	GroupsDir      string        `env:"GROUPS_DIR" envDefault:"./groups"`
	UsageLogSize   int           `env:"USAGE_LOG_SIZE" envDefault:"1000"`
}

func ReadEnvConfig(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse env config: %w", err)
	}
	return nil
}
