package telegram

import (
	"strconv"
	"strings"

	"swbox/internal/commands"
	"swbox/internal/format"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// normalizeCommand turns "/ranks@swbox_bot args" into "<prefix>ranks args".
// Commands addressed to another bot are rejected. Text already using the
// router prefix passes through.
func normalizeCommand(text, prefix, botName string) (string, bool) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, prefix) {
		return text, true
	}
	if !strings.HasPrefix(text, "/") {
		return "", false
	}

	head, rest, _ := strings.Cut(text[1:], " ")
	name, target, addressed := strings.Cut(head, "@")
	if addressed && !strings.EqualFold(target, botName) {
		return "", false
	}
	if name == "" {
		return "", false
	}

	out := prefix + name
	if rest = strings.TrimSpace(rest); rest != "" {
		out += " " + rest
	}
	return out, true
}

func identity(u *tgbotapi.User) commands.Identity {
	if u == nil {
		return commands.Identity{Platform: platform}
	}

	id := commands.Identity{
		Platform: platform,
		ID:       strconv.FormatInt(u.ID, 10),
		Name:     u.FirstName,
		Mention:  u.FirstName,
	}
	if u.UserName != "" {
		id.Name = u.UserName
		id.Mention = "@" + u.UserName
	}
	return id
}

func chatName(c *tgbotapi.Chat) string {
	if c == nil {
		return ""
	}
	if c.Title != "" {
		return c.Title
	}
	return c.Type
}

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
