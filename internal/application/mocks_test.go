package application

import (
	"context"

	"swbox/internal/upstream"

	"github.com/stretchr/testify/mock"
)

type nopLogger struct{}

func (nopLogger) Error(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Debug(string, ...any) {}

type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) Nowline(ctx context.Context) (*upstream.NowlineResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*upstream.NowlineResponse), args.Error(1)
}

func (m *MockAPI) SearchPlayer(ctx context.Context, name string) (*upstream.PlayerSearchResponse, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*upstream.PlayerSearchResponse), args.Error(1)
}

func (m *MockAPI) PlayerSeasons(ctx context.Context, playerID int) (*upstream.PlayerSeasonsResponse, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*upstream.PlayerSeasonsResponse), args.Error(1)
}

func (m *MockAPI) PlayerSummary(ctx context.Context, playerID, season int) (*upstream.PlayerSummaryResponse, error) {
	args := m.Called(ctx, playerID, season)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*upstream.PlayerSummaryResponse), args.Error(1)
}

func (m *MockAPI) SearchMonster(ctx context.Context, name string) (*upstream.MonsterSearchResponse, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*upstream.MonsterSearchResponse), args.Error(1)
}

func (m *MockAPI) MonsterDetails(ctx context.Context, slug string) (*upstream.MonsterDetailsResponse, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*upstream.MonsterDetailsResponse), args.Error(1)
}

func (m *MockAPI) MonsterSummary(ctx context.Context, monsterID, season int, isG3 bool) (*upstream.MonsterSummaryResponse, error) {
	args := m.Called(ctx, monsterID, season, isG3)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*upstream.MonsterSummaryResponse), args.Error(1)
}

func (m *MockAPI) Seasons(ctx context.Context) (*upstream.SeasonsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*upstream.SeasonsResponse), args.Error(1)
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }
