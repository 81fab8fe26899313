package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

type PlayerSearchResponse struct {
	Data []PlayerHit `json:"data"`
}

type PlayerHit struct {
	ID         int    `json:"id"`
	WizardName string `json:"wizard_name"`
}

type PlayerSeasonsResponse struct {
	Data []int `json:"data"`
}

type PlayerSummaryResponse struct {
	// Error is non-empty whenever the "error" key is present, even as null.
	Error json.RawMessage `json:"error"`
	Data  *PlayerSummary  `json:"data"`
}

type PlayerSummary struct {
	WizardName    *string `json:"wizard_name"`
	WizardCountry *string `json:"wizard_country"`
	WizardPicture *string `json:"wizard_picture"`
	LastRatingID  *int    `json:"last_rating_id"`
}

type MonsterSearchResponse struct {
	Data []MonsterHit `json:"data"`
}

type MonsterHit struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type MonsterDetailsResponse struct {
	Data *MonsterDetails `json:"data"`
}

type MonsterDetails struct {
	ID            *int   `json:"id"`
	ImageFilename string `json:"image_filename"`
}

type MonsterSummaryResponse struct {
	Data *MonsterSummary `json:"data"`
}

type MonsterSummary struct {
	Played   int     `json:"played"`
	Winner   int     `json:"winner"`
	Banned   int     `json:"banned"`
	Leader   int     `json:"leader"`
	PlayRate float64 `json:"play_rate"`
	WinRate  float64 `json:"win_rate"`
	BanRate  float64 `json:"ban_rate"`
	LeadRate float64 `json:"lead_rate"`
}

type SeasonsResponse struct {
	Data []SeasonEntry `json:"data"`
}

type SeasonEntry struct {
	Season int `json:"season"`
}

func (c *Client) SearchPlayer(ctx context.Context, name string) (*PlayerSearchResponse, error) {
	u := fmt.Sprintf("%s/player/search/%s", c.swarena, url.PathEscape(name))
	return getJSON[PlayerSearchResponse](ctx, c, u)
}

func (c *Client) PlayerSeasons(ctx context.Context, playerID int) (*PlayerSeasonsResponse, error) {
	u := fmt.Sprintf("%s/player/%d/seasons", c.swarena, playerID)
	return getJSON[PlayerSeasonsResponse](ctx, c, u)
}

func (c *Client) PlayerSummary(ctx context.Context, playerID, season int) (*PlayerSummaryResponse, error) {
	u := fmt.Sprintf("%s/player/%d/summary?season=%d", c.swarena, playerID, season)
	return getJSON[PlayerSummaryResponse](ctx, c, u)
}

func (c *Client) SearchMonster(ctx context.Context, name string) (*MonsterSearchResponse, error) {
	u := fmt.Sprintf("%s/monster/search/%s", c.swarena, url.PathEscape(name))
	return getJSON[MonsterSearchResponse](ctx, c, u)
}

func (c *Client) MonsterDetails(ctx context.Context, slug string) (*MonsterDetailsResponse, error) {
	u := fmt.Sprintf("%s/monster/%s/details", c.swarena, url.PathEscape(slug))
	return getJSON[MonsterDetailsResponse](ctx, c, u)
}

func (c *Client) MonsterSummary(ctx context.Context, monsterID, season int, isG3 bool) (*MonsterSummaryResponse, error) {
	u := fmt.Sprintf("%s/monster/%d/summary?season=%d&isG3=%s", c.swarena, monsterID, season, strconv.FormatBool(isG3))
	return getJSON[MonsterSummaryResponse](ctx, c, u)
}

// Seasons lists every season known to swarena, oldest first.
func (c *Client) Seasons(ctx context.Context) (*SeasonsResponse, error) {
	return getJSON[SeasonsResponse](ctx, c, c.swarena+"/general/seasons")
}
