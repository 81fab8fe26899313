package application

import (
	"errors"
	"fmt"
	"strings"

	"swbox/internal/models"
	"swbox/internal/upstream"
)

var (
	ErrNoData          = upstream.ErrNoData
	ErrPlayerNotFound  = errors.New("player not found")
	ErrMonsterNotFound = errors.New("monster not found")
	ErrSheetsDisabled  = errors.New("google sheets is not configured")
)

// MalformedUpstreamDataError is returned when an upstream answered 200 but a
// field the extractor depends on is absent.
type MalformedUpstreamDataError struct {
	Source string
	Key    string
}

func (e *MalformedUpstreamDataError) Error() string {
	return fmt.Sprintf("malformed %s response: missing key %q", e.Source, e.Key)
}

// AmbiguousPlayerError lists every search hit when a pseudo matches several
// players and none of them exactly.
type AmbiguousPlayerError struct {
	Query      string
	Candidates []models.PlayerRef
}

func (e *AmbiguousPlayerError) Error() string {
	names := make([]string, 0, len(e.Candidates))
	for _, c := range e.Candidates {
		names = append(names, c.Name)
	}
	return fmt.Sprintf("pseudo %q matches %d players: %s", e.Query, len(e.Candidates), strings.Join(names, ", "))
}
