package models

// RankingTier pairs the label shown to users with the key used by swranking.
type RankingTier struct {
	Label string
	Key   string
}

// RankingTiers is the fixed display order. The Punisher tier is keyed "s*" upstream.
var RankingTiers = []RankingTier{
	{Label: "C1", Key: "c1"},
	{Label: "C2", Key: "c2"},
	{Label: "C3", Key: "c3"},
	{Label: "P1", Key: "s1"},
	{Label: "P2", Key: "s2"},
	{Label: "P3", Key: "s3"},
	{Label: "G1", Key: "g1"},
	{Label: "G2", Key: "g2"},
	{Label: "G3", Key: "g3"},
}

type RankingSnapshot struct {
	C1 int `json:"c1"`
	C2 int `json:"c2"`
	C3 int `json:"c3"`
	P1 int `json:"p1"`
	P2 int `json:"p2"`
	P3 int `json:"p3"`
	G1 int `json:"g1"`
	G2 int `json:"g2"`
	G3 int `json:"g3"`
}

type RankingRow struct {
	Label string
	Score int
}

// NewRankingSnapshot builds a snapshot from scores keyed by upstream tier key.
// Keys missing from scores are left at zero; callers validate presence first.
func NewRankingSnapshot(scores map[string]int) *RankingSnapshot {
	return &RankingSnapshot{
		C1: scores["c1"],
		C2: scores["c2"],
		C3: scores["c3"],
		P1: scores["s1"],
		P2: scores["s2"],
		P3: scores["s3"],
		G1: scores["g1"],
		G2: scores["g2"],
		G3: scores["g3"],
	}
}

// Rows returns the nine scores in display order C1..G3.
func (s *RankingSnapshot) Rows() []RankingRow {
	return []RankingRow{
		{Label: "C1", Score: s.C1},
		{Label: "C2", Score: s.C2},
		{Label: "C3", Score: s.C3},
		{Label: "P1", Score: s.P1},
		{Label: "P2", Score: s.P2},
		{Label: "P3", Score: s.P3},
		{Label: "G1", Score: s.G1},
		{Label: "G2", Score: s.G2},
		{Label: "G3", Score: s.G3},
	}
}
