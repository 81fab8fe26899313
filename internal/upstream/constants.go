package upstream

import "time"

const (
	defaultTimeout      = 10 * time.Second
	maxConnsPerHost     = 32
	maxIdleConnDuration = time.Minute
)
