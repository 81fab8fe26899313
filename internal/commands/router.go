package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"swbox/internal/application"
	"swbox/internal/format"
	"swbox/internal/models"

	"github.com/google/uuid"
)

type RouterConfig struct {
	Prefix  string
	Owners  []string
	Timeout time.Duration
}

type Router struct {
	registry *Registry
	usage    application.UsageService
	prefix   string
	owners   map[string]struct{}
	timeout  time.Duration
	logger   Logger
}

func NewRouter(registry *Registry, usage application.UsageService, cfg RouterConfig, logger Logger) *Router {
	owners := make(map[string]struct{})
	for _, id := range cfg.Owners {
		clean := strings.TrimSpace(id)
		if clean != "" {
			owners[clean] = struct{}{}
		}
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = defaultPrefix
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultCommandTimeout
	}

	return &Router{
		registry: registry,
		usage:    usage,
		prefix:   prefix,
		owners:   owners,
		timeout:  timeout,
		logger:   logger,
	}
}

func (r *Router) Prefix() string {
	return r.prefix
}

func (r *Router) IsOwner(id Identity) bool {
	_, ok := r.owners[id.Key()]
	return ok
}

// Dispatch runs the command named in req.Text. The boolean is false when the
// text is not addressed to a known command; such messages are ignored.
func (r *Router) Dispatch(ctx context.Context, req Request) (*Response, bool) {
	text := strings.TrimSpace(req.Text)
	if !strings.HasPrefix(text, r.prefix) {
		return nil, false
	}

	tokens := splitArgs(strings.TrimPrefix(text, r.prefix))
	if len(tokens) == 0 {
		return nil, false
	}

	group, cmd, ok := r.registry.Lookup(tokens[0])
	if !ok {
		return nil, false
	}

	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	log := withArgs(r.logger, "request_id", req.ID, "command", cmd.Name, "user", req.Author.Key())

	resp, err := r.run(ctx, req, group, cmd, tokens, log)
	r.record(ctx, req, cmd, err == nil && resp != nil, log)

	if err != nil {
		log.Warn("command failed", "error", err)
		return Text(describeError(err)), true
	}
	return resp, true
}

func (r *Router) run(ctx context.Context, req Request, group *Group, cmd *Command, tokens []string, log Logger) (*Response, error) {
	if cmd.OwnerOnly && !r.IsOwner(req.Author) {
		log.Info("owner-only command refused")
		return nil, errNotOwner
	}

	args := tokens[1:]
	if len(args) < cmd.MinArgs {
		return Text(fmt.Sprintf(msgUsage, r.prefix, cmd.Usage)), nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	call := &Call{
		Request: req,
		Name:    tokens[0],
		Args:    args,
		Prefix:  r.prefix,
		Group:   group,
		Logger:  log,
	}

	start := time.Now()
	resp, err := cmd.Handler(ctx, call)
	log.Debug("command handled", "duration", time.Since(start))
	return resp, err
}

func (r *Router) record(ctx context.Context, req Request, cmd *Command, success bool, log Logger) {
	if r.usage == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), usageRecordTimeout)
	defer cancel()

	entry := models.CommandLog{
		RequestID: req.ID,
		Platform:  req.Author.Platform,
		UserID:    req.Author.ID,
		Username:  req.Author.Name,
		Server:    req.Server,
		Command:   cmd.Name,
		Success:   success,
	}
	if err := r.usage.Record(ctx, entry); err != nil {
		log.Error("failed to record command usage", "error", err)
	}
}

var errNotOwner = errors.New("owner-only command")

func describeError(err error) string {
	var ambiguous *application.AmbiguousPlayerError
	switch {
	case errors.Is(err, errNotOwner):
		return msgNotOwner
	case errors.As(err, &ambiguous):
		return format.Candidates(ambiguous.Query, ambiguous.Candidates)
	case errors.Is(err, application.ErrPlayerNotFound):
		return msgPlayerNotFound
	case errors.Is(err, application.ErrMonsterNotFound):
		return msgMonsterNotFound
	case errors.Is(err, application.ErrSheetsDisabled):
		return msgSheetsDisabled
	default:
		return msgFetchFailed
	}
}

// splitArgs splits on whitespace, keeping "double quoted" runs together.
func splitArgs(s string) []string {
	var (
		args    []string
		cur     strings.Builder
		quoted  bool
		pending bool
	)
	for _, ch := range s {
		switch {
		case ch == '"':
			quoted = !quoted
			pending = true
		case !quoted && (ch == ' ' || ch == '\t' || ch == '\n'):
			if pending {
				args = append(args, cur.String())
				cur.Reset()
				pending = false
			}
		default:
			cur.WriteRune(ch)
			pending = true
		}
	}
	if pending {
		args = append(args, cur.String())
	}
	return args
}

// scopedLogger prepends fixed key/value pairs to every record.
type scopedLogger struct {
	base Logger
	args []any
}

func withArgs(base Logger, args ...any) Logger {
	return &scopedLogger{base: base, args: args}
}

func (l *scopedLogger) Error(msg string, args ...any) { l.base.Error(msg, l.merge(args)...) }
func (l *scopedLogger) Warn(msg string, args ...any)  { l.base.Warn(msg, l.merge(args)...) }
func (l *scopedLogger) Info(msg string, args ...any)  { l.base.Info(msg, l.merge(args)...) }
func (l *scopedLogger) Debug(msg string, args ...any) { l.base.Debug(msg, l.merge(args)...) }

func (l *scopedLogger) merge(args []any) []any {
	out := make([]any, 0, len(l.args)+len(args))
	out = append(out, l.args...)
	return append(out, args...)
}
