package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"
)

// ErrNoData is returned for any upstream call that did not produce a usable
// JSON body: transport failure, non-200 status or undecodable payload.
var ErrNoData = errors.New("upstream returned no data")

type Config struct {
	SWRankingBaseURL string        `env:"SWRANKING_BASE_URL" envDefault:"https://m.swranking.com"`
	SWArenaBaseURL   string        `env:"SWARENA_BASE_URL" envDefault:"https://api.swarena.gg"`
	Timeout          time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"10s"`
}

// StatusError carries the status of a non-200 response. It matches ErrNoData.
type StatusError struct {
	URL    string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: status %d", e.URL, e.Status)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrNoData
}

type Client struct {
	client    *fasthttp.Client
	swranking string
	swarena   string
	timeout   time.Duration
}

func NewClient(cfg *Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		client: &fasthttp.Client{
			Name:                "swbox",
			MaxConnsPerHost:     maxConnsPerHost,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: maxIdleConnDuration,
		},
		swranking: trimSlash(cfg.SWRankingBaseURL),
		swarena:   trimSlash(cfg.SWArenaBaseURL),
		timeout:   timeout,
	}
}

// deadline returns the earlier of the caller's deadline and the per-call timeout.
func (c *Client) deadline(ctx context.Context) time.Time {
	d := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(d) {
		return ctxDeadline
	}
	return d
}

func getJSON[T any](ctx context.Context, c *Client, url string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", ErrNoData, url, err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	if err := c.client.DoDeadline(req, resp, c.deadline(ctx)); err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", ErrNoData, url, err)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, &StatusError{URL: url, Status: resp.StatusCode()}
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("%w: GET %s: decode: %w", ErrNoData, url, err)
	}
	return &result, nil
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}
