package discord

import (
	"swbox/internal/commands"

	"github.com/bwmarrin/discordgo"
)

func (b *Bot) onMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || b.shouldIgnore(m.Author.Bot, m.ChannelID) {
		return
	}

	req := commands.Request{
		Author:    identity(m.Author),
		Server:    m.GuildID,
		ChannelID: m.ChannelID,
		Text:      m.Content,
	}

	resp, ok := b.router.Dispatch(b.baseContext(), req)
	if !ok {
		return
	}
	b.sendResponse(s, m.ChannelID, m.Reference(), resp)
}

func (b *Bot) sendResponse(s *discordgo.Session, channelID string, ref *discordgo.MessageReference, resp *commands.Response) {
	msgs := chunks(resp)
	attachments := files(resp)

	if len(msgs) == 0 && len(attachments) == 0 {
		return
	}
	if len(msgs) == 0 {
		msgs = []string{msgDone}
	}

	for idx, content := range msgs {
		send := &discordgo.MessageSend{Content: content}
		if idx == 0 {
			send.Reference = ref
		}
		if idx == len(msgs)-1 {
			send.Files = attachments
		}
		if _, err := s.ChannelMessageSendComplex(channelID, send); err != nil {
			b.logger.Error("failed to send discord message", "channel_id", channelID, "error", err)
			return
		}
	}
}

func (b *Bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	user := interactionUser(i.Interaction)
	if user == nil || b.shouldIgnore(user.Bot, i.ChannelID) {
		return
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		b.logger.Error("failed to defer interaction", "error", err)
		return
	}

	req := commands.Request{
		ID:        i.ID,
		Author:    identity(user),
		Server:    i.GuildID,
		ChannelID: i.ChannelID,
		Text:      interactionText(b.router.Prefix(), i.ApplicationCommandData()),
	}

	resp, ok := b.router.Dispatch(b.baseContext(), req)
	if !ok {
		resp = commands.Text(msgUnknownCommand)
	}
	b.editResponse(s, i.Interaction, resp)
}

func (b *Bot) editResponse(s *discordgo.Session, i *discordgo.Interaction, resp *commands.Response) {
	msgs := chunks(resp)
	if len(msgs) == 0 {
		msgs = []string{msgDone}
	}

	first := msgs[0]
	_, err := s.InteractionResponseEdit(i, &discordgo.WebhookEdit{
		Content: &first,
		Files:   files(resp),
	})
	if err != nil {
		b.logger.Error("failed to edit interaction response", "error", err)
		return
	}

	for _, content := range msgs[1:] {
		if _, err := s.FollowupMessageCreate(i, true, &discordgo.WebhookParams{Content: content}); err != nil {
			b.logger.Error("failed to send followup", "error", err)
			return
		}
	}
}
