package models

type PlayerSeasonRecord struct {
	Season  int    `json:"season"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Picture string `json:"picture"`
	Rank    string `json:"rank,omitempty"`
}

// PlayerRef is one hit of the player search endpoint.
type PlayerRef struct {
	ID   int    `json:"id"`
	Name string `json:"wizard_name"`
}
