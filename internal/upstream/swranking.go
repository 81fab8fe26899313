package upstream

import "context"

type NowlineResponse struct {
	Data map[string]*NowlineEntry `json:"data"`
}

type NowlineEntry struct {
	Score *int `json:"score"`
}

// Nowline fetches the current score thresholds for every tier.
func (c *Client) Nowline(ctx context.Context) (*NowlineResponse, error) {
	return getJSON[NowlineResponse](ctx, c, c.swranking+"/api/player/nowline")
}
