package discord

import (
	"io"
	"strings"
	"testing"

	"swbox/internal/commands"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	id := identity(&discordgo.User{ID: "42", Username: "kiwi"})
	assert.Equal(t, commands.Identity{Platform: "discord", ID: "42", Name: "kiwi", Mention: "<@42>"}, id)
	assert.Equal(t, "discord:42", id.Key())
}

func TestInteractionText(t *testing.T) {
	data := discordgo.ApplicationCommandInteractionData{
		Name: "mobstats",
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			{Name: slashArgsOption, Type: discordgo.ApplicationCommandOptionString, Value: " dark vampire "},
		},
	}
	assert.Equal(t, "!mobstats dark vampire", interactionText("!", data))
	assert.Equal(t, "!ranks", interactionText("!", discordgo.ApplicationCommandInteractionData{Name: "ranks"}))
}

func TestChunksAndFiles(t *testing.T) {
	resp := &commands.Response{
		Messages: []string{"", strings.Repeat("a\n", 1500)},
		Files:    []commands.Attachment{{Name: "usage.xlsx", Data: []byte("xlsx")}},
	}

	msgs := chunks(resp)
	require.Len(t, msgs, 2)
	for _, m := range msgs {
		assert.LessOrEqual(t, len(m), maxMessageLength)
	}

	fs := files(resp)
	require.Len(t, fs, 1)
	assert.Equal(t, "usage.xlsx", fs[0].Name)
	data, err := io.ReadAll(fs[0].Reader)
	require.NoError(t, err)
	assert.Equal(t, "xlsx", string(data))
}

func TestSlashCommands(t *testing.T) {
	registry := commands.NewRegistry()
	require.NoError(t, registry.Swap(&commands.Group{Name: "swarena", Commands: []*commands.Command{
		{Name: "trackSwarena", Usage: "trackSwarena <id|pseudo> <valeur>", Description: "d", MinArgs: 2},
		{Name: "help", Usage: "help", Description: "h"},
		{Name: "bad name", Usage: "bad name", Description: "x"},
	}}))

	out := slashCommands(registry)
	require.Len(t, out, 2)
	assert.Equal(t, "trackswarena", out[0].Name)
	require.Len(t, out[0].Options, 1)
	assert.True(t, out[0].Options[0].Required)
	assert.Equal(t, "help", out[1].Name)
	assert.Empty(t, out[1].Options)
}

func TestShouldIgnore(t *testing.T) {
	b := &Bot{}
	assert.True(t, b.shouldIgnore(true, "c1"))
	assert.False(t, b.shouldIgnore(false, "c1"))

	b.allowedChannelID = "c2"
	assert.True(t, b.shouldIgnore(false, "c1"))
	assert.False(t, b.shouldIgnore(false, "c2"))
}
