// Package format renders domain records into chat text.
package format

import (
	"fmt"
	"strings"

	"swbox/internal/models"
)

const (
	codeFence   = "```"
	rankColumn  = 8
	ratePattern = "%s: %.2f%% (%d)"
)

type HelpEntry struct {
	Usage       string
	Description string
}

// Ranking renders the nine tier thresholds as a fixed-width table, addressed
// to mention.
func Ranking(mention string, snap *models.RankingSnapshot) string {
	var b strings.Builder
	b.WriteString(mention)
	b.WriteString("\n")
	b.WriteString(codeFence)
	b.WriteString("Rank    | Score\n")
	b.WriteString("--------|-------\n")
	for _, row := range snap.Rows() {
		fmt.Fprintf(&b, "%-*s| %d\n", rankColumn, row.Label, row.Score)
	}
	b.WriteString(codeFence)
	return b.String()
}

func Season(record models.PlayerSeasonRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "__Saison__ %d:\n", record.Season)
	fmt.Fprintf(&b, "Nom: %s\n", record.Name)
	if record.Rank != "" {
		fmt.Fprintf(&b, "Rank: %s\n", record.Rank)
	}
	fmt.Fprintf(&b, "Pays: %s\n", record.Country)
	fmt.Fprintf(&b, "Photo URL: %s", record.Picture)
	return b.String()
}

// Seasons joins one block per record, separated by a blank line.
func Seasons(records []models.PlayerSeasonRecord) string {
	blocks := make([]string, 0, len(records))
	for _, r := range records {
		blocks = append(blocks, Season(r))
	}
	return strings.Join(blocks, "\n\n")
}

func MonsterStats(snap *models.MonsterStatSnapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s** (Saison %d)\n", snap.Monster.Name, snap.Season)
	writeStats(&b, "Stats (All ranks):", snap.NoG3)
	b.WriteString("\n")
	writeStats(&b, "Stats (G3):", snap.G3)
	return strings.TrimRight(b.String(), "\n")
}

func writeStats(b *strings.Builder, title string, s models.MonsterStats) {
	b.WriteString(title)
	b.WriteString("\n")
	fmt.Fprintf(b, ratePattern+"\n", "Play rate", s.PlayRate, s.Played)
	fmt.Fprintf(b, ratePattern+"\n", "Win rate", s.WinRate, s.Winner)
	fmt.Fprintf(b, ratePattern+"\n", "Ban rate", s.BanRate, s.Banned)
	fmt.Fprintf(b, ratePattern+"\n", "Lead rate", s.LeadRate, s.Leader)
}

func Help(prefix string, entries []HelpEntry) string {
	var b strings.Builder
	b.WriteString("**Commandes disponibles:**\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "`%s%s` - %s\n", prefix, e.Usage, e.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Candidates lists the players an ambiguous pseudo matched, so the user can
// retry with an id.
func Candidates(query string, players []models.PlayerRef) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Plusieurs joueurs correspondent à \"%s\":\n", query)
	for _, p := range players {
		fmt.Fprintf(&b, "- %s (id %d)\n", p.Name, p.ID)
	}
	return strings.TrimRight(b.String(), "\n")
}
