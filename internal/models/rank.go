package models

import "fmt"

const (
	rankTierLetters = "FCPG"
	rankSubLetters  = "123"
)

// RankCodeError reports a rating code that does not map onto a tier label.
type RankCodeError struct {
	Code int
}

func (e *RankCodeError) Error() string {
	return fmt.Sprintf("invalid rank code %d", e.Code)
}

// DecodeRank turns a com2us rating id (e.g. 3002) into its label ("P2").
// The thousands digit selects the tier F/C/P/G, the last two digits the sub-rank 1..3.
func DecodeRank(code int) (string, error) {
	tier := code / 1000
	sub := code % 100
	if code < 0 || tier < 1 || tier > len(rankTierLetters) || sub < 1 || sub > len(rankSubLetters) {
		return "", &RankCodeError{Code: code}
	}
	return string(rankTierLetters[tier-1]) + string(rankSubLetters[sub-1]), nil
}
