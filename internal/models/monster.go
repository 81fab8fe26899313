package models

type MonsterRef struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	ImageFilename string `json:"image_filename"`
}

type MonsterStats struct {
	PlayRate float64 `json:"play_rate"`
	WinRate  float64 `json:"win_rate"`
	BanRate  float64 `json:"ban_rate"`
	LeadRate float64 `json:"lead_rate"`

	Played int `json:"played"`
	Winner int `json:"winner"`
	Banned int `json:"banned"`
	Leader int `json:"leader"`
}

type MonsterStatSnapshot struct {
	Monster MonsterRef   `json:"monster"`
	Season  int          `json:"season"`
	NoG3    MonsterStats `json:"no_g3"`
	G3      MonsterStats `json:"g3"`
}
