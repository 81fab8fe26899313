package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"swbox/internal/format"
)

const (
	GroupGeneral = "general"
	GroupRanking = "ranking"
	GroupSWArena = "swarena"
	GroupAdmin   = "admin"
)

// DefaultCatalog lists the groups compiled into the binary.
func DefaultCatalog() map[string]Factory {
	return map[string]Factory{
		GroupGeneral: GeneralGroup,
		GroupRanking: RankingGroup,
		GroupSWArena: SWArenaGroup,
		GroupAdmin:   AdminGroup,
	}
}

func GeneralGroup(env *Env, _ Settings) (*Group, error) {
	registry := env.Registry
	return &Group{Commands: []*Command{
		{
			Name:        "help",
			Usage:       "help",
			Description: "Affiche la liste des commandes",
			Handler: func(_ context.Context, call *Call) (*Response, error) {
				cmds := registry.Commands()
				entries := make([]format.HelpEntry, 0, len(cmds))
				for _, c := range cmds {
					desc := c.Description
					if c.OwnerOnly {
						desc += " (owner)"
					}
					entries = append(entries, format.HelpEntry{Usage: c.Usage, Description: desc})
				}
				return Text(format.Help(call.Prefix, entries)), nil
			},
		},
	}}, nil
}

func RankingGroup(env *Env, _ Settings) (*Group, error) {
	if env.Services == nil || env.Services.RankingService == nil {
		return nil, errors.New("ranking service is not configured")
	}
	ranking := env.Services.RankingService

	return &Group{Commands: []*Command{
		{
			Name:        "ranks",
			Usage:       "ranks",
			Description: "Scores minimum actuels de chaque rang",
			Handler: func(ctx context.Context, call *Call) (*Response, error) {
				snap, err := ranking.Snapshot(ctx)
				if err != nil {
					return nil, err
				}
				return Text(format.Ranking(call.Request.Author.Mention, snap)), nil
			},
		},
	}}, nil
}

func SWArenaGroup(env *Env, settings Settings) (*Group, error) {
	if env.Services == nil || env.Services.PlayerService == nil || env.Services.MonsterService == nil {
		return nil, errors.New("swarena services are not configured")
	}
	players := env.Services.PlayerService
	monsters := env.Services.MonsterService
	season := settings.Int(seasonSettingKey, 0)

	track := func(ctx context.Context, call *Call, mode, value string) (*Response, error) {
		var id int
		switch mode {
		case "id":
			parsed, err := strconv.Atoi(value)
			if err != nil || parsed <= 0 {
				return Text(fmt.Sprintf(msgInvalidID, value)), nil
			}
			id = parsed
		case "pseudo":
			resolved, err := players.ResolvePseudo(ctx, value)
			if err != nil {
				return nil, err
			}
			id = resolved
		default:
			return Text(fmt.Sprintf(msgUsage, call.Prefix, "trackSwarena <id|pseudo> <valeur>")), nil
		}

		records, err := players.Seasons(ctx, id)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return Text(msgNoSeasons), nil
		}
		call.Logger.Debug("player seasons fetched", "player_id", id, "seasons", len(records))
		return Text(format.Seasons(records)), nil
	}

	return &Group{Commands: []*Command{
		{
			Name:        "trackSwarena",
			Usage:       "trackSwarena <id|pseudo> <valeur>",
			Description: "Historique des saisons d'un joueur",
			MinArgs:     2,
			Handler: func(ctx context.Context, call *Call) (*Response, error) {
				return track(ctx, call, strings.ToLower(call.Args[0]), strings.Join(call.Args[1:], " "))
			},
		},
		{
			Name:        "PtrackSwarena",
			Usage:       "PtrackSwarena <pseudo>",
			Description: "Historique des saisons d'un joueur par pseudo",
			MinArgs:     1,
			Handler: func(ctx context.Context, call *Call) (*Response, error) {
				return track(ctx, call, "pseudo", strings.Join(call.Args, " "))
			},
		},
		{
			Name:        "mobstats",
			Usage:       "mobstats <nom du monstre> [season=N]",
			Description: "Statistiques RTA d'un monstre",
			MinArgs:     1,
			Handler: func(ctx context.Context, call *Call) (*Response, error) {
				name, explicit := splitSeasonArg(call.Args)
				s := season
				if explicit > 0 {
					s = explicit
				}
				snap, err := monsters.Stats(ctx, name, s)
				if err != nil {
					return nil, err
				}
				return Text(format.MonsterStats(snap)), nil
			},
		},
	}}, nil
}

// splitSeasonArg pulls a trailing "season=N" out of the monster name.
func splitSeasonArg(args []string) (string, int) {
	if n := len(args); n > 1 {
		last := strings.ToLower(args[n-1])
		if strings.HasPrefix(last, seasonArgPrefix) {
			if s, err := strconv.Atoi(strings.TrimPrefix(last, seasonArgPrefix)); err == nil {
				return strings.Join(args[:n-1], " "), s
			}
		}
	}
	return strings.Join(args, " "), 0
}

func AdminGroup(env *Env, _ Settings) (*Group, error) {
	reloader := env.Reloader
	if reloader == nil {
		return nil, errors.New("reloader is not configured")
	}

	cmds := []*Command{
		{
			Name:        "reload",
			Usage:       "reload <groupe>",
			Description: "Recharge un groupe de commandes",
			OwnerOnly:   true,
			MinArgs:     1,
			Handler: func(_ context.Context, call *Call) (*Response, error) {
				name := call.Args[0]
				if err := reloader.Reload(name); err != nil {
					if errors.Is(err, ErrUnknownGroup) {
						return Text(fmt.Sprintf(msgUnknownGroup, name)), nil
					}
					call.Logger.Error("group reload failed", "group", name, "error", err)
					return Text(fmt.Sprintf(msgReloadFailed, name)), nil
				}
				return Text(fmt.Sprintf(msgReloaded, name)), nil
			},
		},
	}

	if env.Services != nil && env.Services.UsageService != nil {
		svc := env.Services.UsageService
		cmds = append(cmds,
			&Command{
				Name:        "usage",
				Usage:       "usage",
				Description: "Résumé de l'utilisation des commandes",
				OwnerOnly:   true,
				Handler: func(ctx context.Context, _ *Call) (*Response, error) {
					summary, err := svc.Summary(ctx)
					if err != nil {
						return nil, err
					}
					if len(summary) == 0 {
						return Text(msgNoUsage), nil
					}
					var b strings.Builder
					b.WriteString("```")
					for _, u := range summary {
						fmt.Fprintf(&b, "%-14s %5d  ok %5d  ko %5d\n", u.Command, u.Total, u.Success, u.Failures)
					}
					b.WriteString("```")
					return Text(b.String()), nil
				},
			},
			&Command{
				Name:        "sheet",
				Usage:       "sheet",
				Description: "Publie le résumé d'utilisation sur Google Sheets",
				OwnerOnly:   true,
				Handler: func(ctx context.Context, _ *Call) (*Response, error) {
					url, err := svc.PublishSheet(ctx)
					if err != nil {
						return nil, err
					}
					return Text(fmt.Sprintf(msgSheetPublished, url)), nil
				},
			},
			&Command{
				Name:        "export",
				Usage:       "export",
				Description: "Exporte le journal des commandes en Excel",
				OwnerOnly:   true,
				Handler: func(ctx context.Context, _ *Call) (*Response, error) {
					data, err := svc.ExcelReport(ctx)
					if err != nil {
						return nil, err
					}
					return &Response{Files: []Attachment{{
						Name:        fmt.Sprintf("usage_%s.xlsx", time.Now().Format(exportFileLayout)),
						ContentType: xlsxContentType,
						Data:        data,
					}}}, nil
				},
			},
		)
	}

	return &Group{Commands: cmds}, nil
}
