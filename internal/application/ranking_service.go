package application

import (
	"context"

	"swbox/internal/models"
)

type RankingServiceImpl struct {
	api RankingAPI
}

func NewRankingServiceImpl(api RankingAPI) *RankingServiceImpl {
	return &RankingServiceImpl{api: api}
}

// Snapshot returns the nine current tier thresholds. A missing tier or score
// yields *MalformedUpstreamDataError naming the first absent key.
func (s *RankingServiceImpl) Snapshot(ctx context.Context) (*models.RankingSnapshot, error) {
	resp, err := s.api.Nowline(ctx)
	if err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, &MalformedUpstreamDataError{Source: sourceNowline, Key: "data"}
	}

	scores := make(map[string]int, len(models.RankingTiers))
	for _, tier := range models.RankingTiers {
		entry, ok := resp.Data[tier.Key]
		if !ok || entry == nil {
			return nil, &MalformedUpstreamDataError{Source: sourceNowline, Key: tier.Key}
		}
		if entry.Score == nil {
			return nil, &MalformedUpstreamDataError{Source: sourceNowline, Key: tier.Key + ".score"}
		}
		scores[tier.Key] = *entry.Score
	}

	return models.NewRankingSnapshot(scores), nil
}
