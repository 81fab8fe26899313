package application

import (
	"context"

	"swbox/internal/models"
	"swbox/internal/repository"
	"swbox/internal/upstream"
)

type Logger interface {
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	Info(msg string, args ...any)
	Debug(msg string, args ...any)
}

type RankingAPI interface {
	Nowline(ctx context.Context) (*upstream.NowlineResponse, error)
}

type SWArenaAPI interface {
	SearchPlayer(ctx context.Context, name string) (*upstream.PlayerSearchResponse, error)
	PlayerSeasons(ctx context.Context, playerID int) (*upstream.PlayerSeasonsResponse, error)
	PlayerSummary(ctx context.Context, playerID, season int) (*upstream.PlayerSummaryResponse, error)
	SearchMonster(ctx context.Context, name string) (*upstream.MonsterSearchResponse, error)
	MonsterDetails(ctx context.Context, slug string) (*upstream.MonsterDetailsResponse, error)
	MonsterSummary(ctx context.Context, monsterID, season int, isG3 bool) (*upstream.MonsterSummaryResponse, error)
	Seasons(ctx context.Context) (*upstream.SeasonsResponse, error)
}

type API interface {
	RankingAPI
	SWArenaAPI
}

// SheetsClient publishes tables to a Google spreadsheet.
type SheetsClient interface {
	CreateSpreadsheet(ctx context.Context, title, ownerEmail string) (id, url string, err error)
	ReplaceValues(ctx context.Context, spreadsheetID, clearRange, start string, values [][]interface{}) error
}

type Config struct {
	DefaultSeason          int    `env:"DEFAULT_SEASON" envDefault:"30"`
	SeasonFetchConcurrency int    `env:"SEASON_FETCH_CONCURRENCY" envDefault:"4"`
	SheetID                string `env:"GOOGLE_SHEET_ID" envDefault:""`
	SheetOwnerEmail        string `env:"GOOGLE_OWNER_EMAIL" envDefault:""`
}

type RankingService interface {
	Snapshot(ctx context.Context) (*models.RankingSnapshot, error)
}

type PlayerService interface {
	Seasons(ctx context.Context, playerID int) ([]models.PlayerSeasonRecord, error)
	ResolvePseudo(ctx context.Context, pseudo string) (int, error)
}

type MonsterService interface {
	Resolve(ctx context.Context, name string) (*models.MonsterRef, error)
	Stats(ctx context.Context, name string, season int) (*models.MonsterStatSnapshot, error)
}

type UsageService interface {
	Record(ctx context.Context, entry models.CommandLog) error
	Summary(ctx context.Context) ([]CommandUsage, error)
	ExcelReport(ctx context.Context) ([]byte, error)
	PublishSheet(ctx context.Context) (url string, err error)
}

type Service struct {
	RankingService RankingService
	PlayerService  PlayerService
	MonsterService MonsterService
	UsageService   UsageService
}

// NewService wires the services. sheets may be nil, in which case
// PublishSheet returns ErrSheetsDisabled.
func NewService(api API, repos *repository.Repository, sheets SheetsClient, cfg *Config, logger Logger) *Service {
	return &Service{
		RankingService: NewRankingServiceImpl(api),
		PlayerService:  NewPlayerServiceImpl(api, cfg.SeasonFetchConcurrency, logger),
		MonsterService: NewMonsterServiceImpl(api, cfg.DefaultSeason, logger),
		UsageService:   NewUsageServiceImpl(repos.CommandLog, logger).WithSheets(sheets, cfg.SheetID, cfg.SheetOwnerEmail),
	}
}
