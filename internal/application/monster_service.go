package application

import (
	"context"
	"strings"

	"swbox/internal/models"
	"swbox/internal/upstream"

	"golang.org/x/sync/errgroup"
)

type MonsterServiceImpl struct {
	api           SWArenaAPI
	defaultSeason int
	logger        Logger
}

func NewMonsterServiceImpl(api SWArenaAPI, defaultSeason int, logger Logger) *MonsterServiceImpl {
	return &MonsterServiceImpl{
		api:           api,
		defaultSeason: defaultSeason,
		logger:        logger,
	}
}

// Resolve finds the monster matching a free-text name and fetches its id.
// An empty search result returns ErrMonsterNotFound without further calls.
func (s *MonsterServiceImpl) Resolve(ctx context.Context, name string) (*models.MonsterRef, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMonsterNotFound
	}

	resp, err := s.api.SearchMonster(ctx, name)
	if err != nil {
		return nil, err
	}

	hit, ok := pickMonster(resp.Data, name)
	if !ok {
		return nil, ErrMonsterNotFound
	}

	details, err := s.api.MonsterDetails(ctx, hit.Slug)
	if err != nil {
		return nil, err
	}
	if details.Data == nil || details.Data.ID == nil {
		return nil, &MalformedUpstreamDataError{Source: "monster details", Key: "data.id"}
	}

	return &models.MonsterRef{
		ID:            *details.Data.ID,
		Name:          hit.Name,
		Slug:          hit.Slug,
		ImageFilename: details.Data.ImageFilename,
	}, nil
}

// Stats resolves the monster and fetches its non-G3 and G3 summaries for the
// given season. A season of 0 means the latest season known upstream.
func (s *MonsterServiceImpl) Stats(ctx context.Context, name string, season int) (*models.MonsterStatSnapshot, error) {
	ref, err := s.Resolve(ctx, name)
	if err != nil {
		return nil, err
	}

	if season <= 0 {
		season = s.latestSeason(ctx)
	}

	var noG3, g3 *models.MonsterStats
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := s.summary(gCtx, ref.ID, season, false)
		noG3 = stats
		return err
	})
	g.Go(func() error {
		stats, err := s.summary(gCtx, ref.ID, season, true)
		g3 = stats
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &models.MonsterStatSnapshot{
		Monster: *ref,
		Season:  season,
		NoG3:    *noG3,
		G3:      *g3,
	}, nil
}

func (s *MonsterServiceImpl) summary(ctx context.Context, monsterID, season int, isG3 bool) (*models.MonsterStats, error) {
	resp, err := s.api.MonsterSummary(ctx, monsterID, season, isG3)
	if err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, ErrNoData
	}

	d := resp.Data
	return &models.MonsterStats{
		PlayRate: d.PlayRate,
		WinRate:  d.WinRate,
		BanRate:  d.BanRate,
		LeadRate: d.LeadRate,
		Played:   d.Played,
		Winner:   d.Winner,
		Banned:   d.Banned,
		Leader:   d.Leader,
	}, nil
}

func (s *MonsterServiceImpl) latestSeason(ctx context.Context) int {
	resp, err := s.api.Seasons(ctx)
	if err != nil || len(resp.Data) == 0 {
		s.logger.Warn("latest season unavailable, using default", "default_season", s.defaultSeason, "error", err)
		return s.defaultSeason
	}
	return resp.Data[len(resp.Data)-1].Season
}

// pickMonster prefers an exact name match, then a second awakening, then the first hit.
func pickMonster(hits []upstream.MonsterHit, name string) (upstream.MonsterHit, bool) {
	if len(hits) == 0 {
		return upstream.MonsterHit{}, false
	}
	for _, hit := range hits {
		if sameName(hit.Name, name) {
			return hit, true
		}
	}
	for _, hit := range hits {
		if strings.Contains(foldName(hit.Name), secondAwakeningMarker) {
			return hit, true
		}
	}
	return hits[0], true
}
