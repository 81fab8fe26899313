package format

import (
	"strings"
	"testing"

	"swbox/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRanking(t *testing.T) {
	snap := &models.RankingSnapshot{
		C1: 1000, C2: 1100, C3: 1200,
		P1: 1300, P2: 1400, P3: 1500,
		G1: 1600, G2: 1700, G3: 1800,
	}

	want := "<@42>\n" +
		"```Rank    | Score\n" +
		"--------|-------\n" +
		"C1      | 1000\n" +
		"C2      | 1100\n" +
		"C3      | 1200\n" +
		"P1      | 1300\n" +
		"P2      | 1400\n" +
		"P3      | 1500\n" +
		"G1      | 1600\n" +
		"G2      | 1700\n" +
		"G3      | 1800\n" +
		"```"

	assert.Equal(t, want, Ranking("<@42>", snap))
}

func TestSeason(t *testing.T) {
	tests := []struct {
		name   string
		record models.PlayerSeasonRecord
		want   string
	}{
		{
			name:   "with rank",
			record: models.PlayerSeasonRecord{Season: 28, Name: "Kiwi", Country: "FR", Picture: "https://p/1.png", Rank: "G2"},
			want:   "__Saison__ 28:\nNom: Kiwi\nRank: G2\nPays: FR\nPhoto URL: https://p/1.png",
		},
		{
			name:   "without rank",
			record: models.PlayerSeasonRecord{Season: 3, Name: "Kiwi", Country: "N/A", Picture: "N/A"},
			want:   "__Saison__ 3:\nNom: Kiwi\nPays: N/A\nPhoto URL: N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Season(tt.record))
		})
	}
}

func TestSeasonsSeparator(t *testing.T) {
	out := Seasons([]models.PlayerSeasonRecord{{Season: 1}, {Season: 2}})
	assert.Equal(t, 1, strings.Count(out, "\n\n"))
	assert.True(t, strings.HasPrefix(out, "__Saison__ 1:"))
}

func TestMonsterStats(t *testing.T) {
	snap := &models.MonsterStatSnapshot{
		Monster: models.MonsterRef{Name: "Lushen"},
		Season:  31,
		NoG3:    models.MonsterStats{PlayRate: 12.345, Played: 1000, WinRate: 50, Winner: 500, BanRate: 1.5, Banned: 15, LeadRate: 0.25, Leader: 3},
		G3:      models.MonsterStats{PlayRate: 40, Played: 80},
	}

	want := "**Lushen** (Saison 31)\n" +
		"Stats (All ranks):\n" +
		"Play rate: 12.35% (1000)\n" +
		"Win rate: 50.00% (500)\n" +
		"Ban rate: 1.50% (15)\n" +
		"Lead rate: 0.25% (3)\n" +
		"\n" +
		"Stats (G3):\n" +
		"Play rate: 40.00% (80)\n" +
		"Win rate: 0.00% (0)\n" +
		"Ban rate: 0.00% (0)\n" +
		"Lead rate: 0.00% (0)"

	assert.Equal(t, want, MonsterStats(snap))
}

func TestHelp(t *testing.T) {
	out := Help("!", []HelpEntry{
		{Usage: "ranks", Description: "Seuils actuels"},
		{Usage: "mobstats <nom>", Description: "Stats d'un monstre"},
	})
	assert.Equal(t, "**Commandes disponibles:**\n`!ranks` - Seuils actuels\n`!mobstats <nom>` - Stats d'un monstre", out)
}

func TestCandidates(t *testing.T) {
	out := Candidates("kiw", []models.PlayerRef{{ID: 1, Name: "Kiwi"}, {ID: 2, Name: "KiwiLord"}})
	assert.Contains(t, out, "- Kiwi (id 1)")
	assert.Contains(t, out, "- KiwiLord (id 2)")
}

func TestSplitShortText(t *testing.T) {
	assert.Equal(t, []string{"hello"}, Split("hello", DiscordLimit))
}

func TestSplitOnLines(t *testing.T) {
	lines := make([]string, 0, 300)
	for i := 0; i < 300; i++ {
		lines = append(lines, strings.Repeat("x", 19))
	}
	text := strings.Join(lines, "\n")

	chunks := Split(text, DiscordLimit)
	require.Greater(t, len(chunks), 1)

	total := 0
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), DiscordLimit)
		for _, l := range strings.Split(c, "\n") {
			assert.Len(t, l, 19)
			total++
		}
	}
	assert.Equal(t, 300, total)
}

func TestSplitLongLine(t *testing.T) {
	text := strings.Repeat("é", 3000)

	chunks := Split(text, DiscordLimit)
	require.Len(t, chunks, 4)
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), DiscordLimit)
		assert.True(t, strings.ToValidUTF8(c, "?") == c)
	}
	assert.Equal(t, text, strings.Join(chunks, ""))
}

func TestSplitReopensCodeFence(t *testing.T) {
	body := make([]string, 0, 200)
	for i := 0; i < 200; i++ {
		body = append(body, strings.Repeat("y", 15))
	}
	text := "```\n" + strings.Join(body, "\n") + "\n```"

	chunks := Split(text, 1000)
	require.Greater(t, len(chunks), 1)
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), 1000)
		assert.True(t, strings.HasPrefix(c, "```"), c[:10])
		assert.True(t, strings.HasSuffix(c, "```"))
	}
}
