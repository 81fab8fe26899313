package discord

import "github.com/bwmarrin/discordgo"

// shouldIgnore filters out bot authors and, when configured, messages from
// other channels.
func (b *Bot) shouldIgnore(authorIsBot bool, channelID string) bool {
	if authorIsBot {
		return true
	}
	return b.allowedChannelID != "" && channelID != b.allowedChannelID
}

func interactionUser(i *discordgo.Interaction) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}
