package application

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"swbox/internal/models"
	"swbox/internal/upstream"

	"golang.org/x/sync/errgroup"
)

var errSeasonUnavailable = errors.New("season summary unavailable")

type PlayerServiceImpl struct {
	api         SWArenaAPI
	concurrency int
	logger      Logger
}

func NewPlayerServiceImpl(api SWArenaAPI, concurrency int, logger Logger) *PlayerServiceImpl {
	if concurrency <= 0 {
		concurrency = defaultSeasonFetchConcurrency
	}
	return &PlayerServiceImpl{
		api:         api,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Seasons returns one record per season listed for the player, in the order
// the seasons endpoint returned them. Seasons whose summary cannot be fetched
// are left out.
func (s *PlayerServiceImpl) Seasons(ctx context.Context, playerID int) ([]models.PlayerSeasonRecord, error) {
	resp, err := s.api.PlayerSeasons(ctx, playerID)
	if err != nil {
		var statusErr *upstream.StatusError
		if errors.As(err, &statusErr) && statusErr.Status == http.StatusNotFound {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	if resp.Data == nil {
		return nil, ErrPlayerNotFound
	}

	seasons := resp.Data
	slots := make([]*models.PlayerSeasonRecord, len(seasons))

	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)
	for i, season := range seasons {
		i, season := i, season
		g.Go(func() error {
			record, err := s.seasonRecord(ctx, playerID, season)
			if err != nil {
				s.logger.Debug("skipping season", "player_id", playerID, "season", season, "error", err)
				return nil
			}
			slots[i] = record
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoData, err)
	}

	records := make([]models.PlayerSeasonRecord, 0, len(seasons))
	for _, record := range slots {
		if record != nil {
			records = append(records, *record)
		}
	}
	return records, nil
}

func (s *PlayerServiceImpl) seasonRecord(ctx context.Context, playerID, season int) (*models.PlayerSeasonRecord, error) {
	resp, err := s.api.PlayerSummary(ctx, playerID, season)
	if err != nil {
		return nil, err
	}
	if len(resp.Error) > 0 || resp.Data == nil {
		return nil, errSeasonUnavailable
	}

	wizard := resp.Data
	record := &models.PlayerSeasonRecord{
		Season:  season,
		Name:    stringOrDefault(wizard.WizardName, defaultNotAvailable),
		Country: stringOrDefault(wizard.WizardCountry, defaultNotAvailable),
		Picture: stringOrDefault(wizard.WizardPicture, defaultNotAvailable),
	}

	if wizard.LastRatingID != nil {
		rank, err := models.DecodeRank(*wizard.LastRatingID)
		if err != nil {
			s.logger.Debug("undecodable rank", "player_id", playerID, "season", season, "error", err)
		} else {
			record.Rank = rank
		}
	}

	return record, nil
}

// ResolvePseudo maps a pseudo to a player id. Numeric input is taken as an id.
// Several hits without an exact (case-insensitive) match are reported as
// *AmbiguousPlayerError rather than guessed.
func (s *PlayerServiceImpl) ResolvePseudo(ctx context.Context, pseudo string) (int, error) {
	pseudo = strings.TrimSpace(pseudo)
	if id, err := strconv.Atoi(pseudo); err == nil {
		return id, nil
	}

	resp, err := s.api.SearchPlayer(ctx, pseudo)
	if err != nil {
		return 0, err
	}
	if len(resp.Data) == 0 {
		return 0, ErrPlayerNotFound
	}
	if len(resp.Data) == 1 {
		return resp.Data[0].ID, nil
	}

	candidates := make([]models.PlayerRef, 0, len(resp.Data))
	var exact []models.PlayerRef
	for _, hit := range resp.Data {
		ref := models.PlayerRef{ID: hit.ID, Name: hit.WizardName}
		candidates = append(candidates, ref)
		if sameName(hit.WizardName, pseudo) {
			exact = append(exact, ref)
		}
	}
	if len(exact) == 1 {
		return exact[0].ID, nil
	}
	if len(exact) > 1 {
		candidates = exact
	}

	return 0, &AmbiguousPlayerError{Query: pseudo, Candidates: candidates}
}
