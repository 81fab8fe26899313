package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(&Config{
		SWRankingBaseURL: srv.URL + "/",
		SWArenaBaseURL:   srv.URL,
		Timeout:          2 * time.Second,
	})
}

func TestNowlineDecodesScores(t *testing.T) {
	c := setupTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/player/nowline", r.URL.Path)
		w.Write([]byte(`{"data":{"c1":{"score":1000},"g3":{"score":4200}}}`))
	})

	resp, err := c.Nowline(context.Background())
	require.NoError(t, err)
	require.NotNil(t, resp.Data["c1"])
	require.NotNil(t, resp.Data["c1"].Score)
	assert.Equal(t, 1000, *resp.Data["c1"].Score)
	assert.Equal(t, 4200, *resp.Data["g3"].Score)
	assert.Nil(t, resp.Data["s1"])
}

func TestGetJSONNonOKStatus(t *testing.T) {
	c := setupTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"data":null}`))
	})

	_, err := c.PlayerSeasons(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoData))

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.Status)
}

func TestGetJSONInvalidBody(t *testing.T) {
	c := setupTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>maintenance</html>`))
	})

	_, err := c.Seasons(context.Background())
	assert.ErrorIs(t, err, ErrNoData)
}

func TestGetJSONTimeout(t *testing.T) {
	c := setupTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte(`{"data":[]}`))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := c.SearchMonster(ctx, "lushen")
	assert.ErrorIs(t, err, ErrNoData)
	assert.Less(t, time.Since(start), 400*time.Millisecond)
}

func TestGetJSONCanceledContext(t *testing.T) {
	calls := 0
	c := setupTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Nowline(ctx)
	assert.ErrorIs(t, err, ErrNoData)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
}

func TestSwarenaPaths(t *testing.T) {
	var got []string
	c := setupTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.URL.RequestURI())
		w.Write([]byte(`{"data":null}`))
	})
	ctx := context.Background()

	_, err := c.SearchPlayer(ctx, "Fal thazard")
	require.NoError(t, err)
	_, err = c.PlayerSummary(ctx, 11934958, 30)
	require.NoError(t, err)
	_, err = c.MonsterDetails(ctx, "lushen-wind")
	require.NoError(t, err)
	_, err = c.MonsterSummary(ctx, 14514, 30, true)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/player/search/Fal%20thazard",
		"/player/11934958/summary?season=30",
		"/monster/lushen-wind/details",
		"/monster/14514/summary?season=30&isG3=true",
	}, got)
}

func TestPlayerSummaryErrorKeyPresence(t *testing.T) {
	c := setupTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":null,"data":{"wizard_name":"Falthazard"}}`))
	})

	resp, err := c.PlayerSummary(context.Background(), 1, 30)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Error)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "Falthazard", *resp.Data.WizardName)
	assert.Nil(t, resp.Data.LastRatingID)
}
