package application

import (
	"context"
	"errors"
	"testing"

	"swbox/internal/models"
	"swbox/internal/upstream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fullNowline() *upstream.NowlineResponse {
	data := make(map[string]*upstream.NowlineEntry)
	for i, tier := range models.RankingTiers {
		data[tier.Key] = &upstream.NowlineEntry{Score: intPtr(1000 + i*100)}
	}
	return &upstream.NowlineResponse{Data: data}
}

func TestRankingSnapshot(t *testing.T) {
	api := new(MockAPI)
	api.On("Nowline", mock.Anything).Return(fullNowline(), nil)

	snap, err := NewRankingServiceImpl(api).Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &models.RankingSnapshot{
		C1: 1000, C2: 1100, C3: 1200,
		P1: 1300, P2: 1400, P3: 1500,
		G1: 1600, G2: 1700, G3: 1800,
	}, snap)
}

func TestRankingSnapshotMissingKey(t *testing.T) {
	for _, tier := range models.RankingTiers {
		t.Run(tier.Key, func(t *testing.T) {
			resp := fullNowline()
			delete(resp.Data, tier.Key)

			api := new(MockAPI)
			api.On("Nowline", mock.Anything).Return(resp, nil)

			_, err := NewRankingServiceImpl(api).Snapshot(context.Background())

			var malformed *MalformedUpstreamDataError
			require.True(t, errors.As(err, &malformed))
			assert.Equal(t, tier.Key, malformed.Key)
		})
	}
}

func TestRankingSnapshotMissingScore(t *testing.T) {
	resp := fullNowline()
	resp.Data["g2"] = &upstream.NowlineEntry{}

	api := new(MockAPI)
	api.On("Nowline", mock.Anything).Return(resp, nil)

	_, err := NewRankingServiceImpl(api).Snapshot(context.Background())

	var malformed *MalformedUpstreamDataError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "g2.score", malformed.Key)
}

func TestRankingSnapshotNoData(t *testing.T) {
	tests := []struct {
		name string
		resp *upstream.NowlineResponse
		err  error
		want error
	}{
		{name: "transport failure", err: &upstream.StatusError{URL: "x", Status: 502}, want: ErrNoData},
		{name: "null data object", resp: &upstream.NowlineResponse{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(MockAPI)
			if tt.err != nil {
				api.On("Nowline", mock.Anything).Return(nil, tt.err)
			} else {
				api.On("Nowline", mock.Anything).Return(tt.resp, nil)
			}

			snap, err := NewRankingServiceImpl(api).Snapshot(context.Background())
			assert.Nil(t, snap)
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			} else {
				var malformed *MalformedUpstreamDataError
				assert.True(t, errors.As(err, &malformed))
			}
		})
	}
}
