package discord

import (
	"bytes"
	"strings"

	"swbox/internal/commands"
	"swbox/internal/format"

	"github.com/bwmarrin/discordgo"
)

func identity(u *discordgo.User) commands.Identity {
	if u == nil {
		return commands.Identity{Platform: platform}
	}
	return commands.Identity{
		Platform: platform,
		ID:       u.ID,
		Name:     u.Username,
		Mention:  u.Mention(),
	}
}

// interactionText rebuilds the message form of a slash command, so the router
// can parse it like any other message.
func interactionText(prefix string, data discordgo.ApplicationCommandInteractionData) string {
	text := prefix + data.Name
	for _, opt := range data.Options {
		if opt.Name == slashArgsOption && opt.Type == discordgo.ApplicationCommandOptionString {
			if args := strings.TrimSpace(opt.StringValue()); args != "" {
				text += " " + args
			}
		}
	}
	return text
}

// chunks splits every response message to the Discord limit.
func chunks(resp *commands.Response) []string {
	var out []string
	for _, msg := range resp.Messages {
		if msg == "" {
			continue
		}
		out = append(out, format.Split(msg, maxMessageLength)...)
	}
	return out
}

func files(resp *commands.Response) []*discordgo.File {
	out := make([]*discordgo.File, 0, len(resp.Files))
	for _, f := range resp.Files {
		out = append(out, &discordgo.File{
			Name:        f.Name,
			ContentType: f.ContentType,
			Reader:      bytes.NewReader(f.Data),
		})
	}
	return out
}
