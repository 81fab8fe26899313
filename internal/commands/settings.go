package commands

import (
	"strings"

	"github.com/spf13/cast"
)

// Settings holds the free-form "settings" table of a group manifest.
type Settings map[string]any

func (s Settings) Int(key string, def int) int {
	v, ok := s[strings.ToLower(key)]
	if !ok {
		return def
	}
	i, err := cast.ToIntE(v)
	if err != nil {
		return def
	}
	return i
}

func (s Settings) String(key, def string) string {
	v, ok := s[strings.ToLower(key)]
	if !ok {
		return def
	}
	str, err := cast.ToStringE(v)
	if err != nil || str == "" {
		return def
	}
	return str
}

func (s Settings) Bool(key string, def bool) bool {
	v, ok := s[strings.ToLower(key)]
	if !ok {
		return def
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return def
	}
	return b
}
