package telegram

import (
	"context"
	"strconv"

	"swbox/internal/commands"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	text, ok := normalizeCommand(msg.Text, b.router.Prefix(), b.bot.Self.UserName)
	if !ok {
		return
	}

	req := commands.Request{
		Author:    identity(msg.From),
		Server:    chatName(msg.Chat),
		ChannelID: strconv.FormatInt(msg.Chat.ID, 10),
		Text:      text,
	}

	resp, ok := b.router.Dispatch(ctx, req)
	if !ok {
		return
	}
	b.sendResponse(msg.Chat.ID, resp)
}

func (b *Bot) sendResponse(chatID int64, resp *commands.Response) {
	for _, text := range chunks(resp) {
		b.sendMessage(chatID, text)
	}

	for _, f := range resp.Files {
		doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: f.Name, Bytes: f.Data})
		if _, err := b.bot.Send(doc); err != nil {
			b.logger.Error("failed to send telegram document", "chat_id", chatID, "file", f.Name, "error", err)
		}
	}
}

func (b *Bot) sendMessage(chatID int64, text string) {
	if text == "" {
		return
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.DisableWebPagePreview = true
	if _, err := b.bot.Send(msg); err != nil {
		b.logger.Error("failed to send telegram message", "chat_id", chatID, "error", err)
	}
}
