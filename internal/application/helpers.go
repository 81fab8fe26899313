package application

import (
	"strings"

	"golang.org/x/text/cases"
)

// foldName builds a fresh Caser per call: casers keep state and are not
// safe to share between goroutines.
func foldName(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

func sameName(a, b string) bool {
	return foldName(a) == foldName(b)
}

func stringOrDefault(value *string, def string) string {
	if value == nil || *value == "" {
		return def
	}
	return *value
}

func successRate(success, total int) float64 {
	if total == 0 {
		return 0.0
	}
	return (float64(success) / float64(total)) * 100
}
