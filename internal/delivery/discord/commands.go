package discord

import (
	"strings"

	"swbox/internal/commands"

	"github.com/bwmarrin/discordgo"
)

func (b *Bot) addCommands(cmds ...*discordgo.ApplicationCommand) {
	b.commands = append(b.commands, cmds...)
}

// slashCommands mirrors the registry as slash commands. Every command takes
// its arguments as one free-text option, parsed by the router like a message.
func slashCommands(registry *commands.Registry) []*discordgo.ApplicationCommand {
	var out []*discordgo.ApplicationCommand
	seen := make(map[string]bool)
	for _, cmd := range registry.Commands() {
		name := slashName(cmd.Name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, newSlashCommand(name, cmd))
	}
	return out
}

func newSlashCommand(name string, cmd *commands.Command) *discordgo.ApplicationCommand {
	sc := &discordgo.ApplicationCommand{
		Name:        name,
		Description: cmd.Description,
	}
	if cmd.MinArgs > 0 || strings.Contains(cmd.Usage, " ") {
		sc.Options = []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        slashArgsOption,
				Description: slashArgsDescription,
				Required:    cmd.MinArgs > 0,
			},
		}
	}
	return sc
}

// slashName lowercases a command name. Names Discord would reject are dropped.
func slashName(name string) string {
	name = strings.ToLower(name)
	if name == "" || len(name) > slashNameMaxLength {
		return ""
	}
	for _, r := range name {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' || r == '_') {
			return ""
		}
	}
	return name
}
