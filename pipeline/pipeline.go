// Package pipeline orchestrates one profile command invocation:
// validate, rate limit, session check, fetch, extract, render. Every
// path terminates in an Outcome; nothing propagates past Handle.
package pipeline

import (
	"context"
	"net/http"

	"github.com/uniquetopup/ff_info_bot/freefire"
	"github.com/uniquetopup/ff_info_bot/freefire/client"
	"github.com/uniquetopup/ff_info_bot/limiter"
	"github.com/uniquetopup/ff_info_bot/logger"
	"github.com/uniquetopup/ff_info_bot/models"
)

// User-facing replies for the short-circuit paths.
const (
	ReplyInvalidUID  = "❌ UID must be numeric"
	ReplyStarting    = "⚠️ Bot is starting, try again"
	ReplyUnavailable = "⚠️ Free Fire service unavailable"
	ReplyThrottled   = "⏳ You're doing that too fast, try again shortly"
)

// Outcome is what one invocation produces: either a plain reply or a
// finished report, never both, never neither.
type Outcome struct {
	Reply  string
	Report *models.Report
}

// Sessions exposes the shared HTTP client handle. Satisfied by
// *session.Manager.
type Sessions interface {
	Client() (*http.Client, error)
}

type Pipeline struct {
	sessions Sessions
	limiter  limiter.Limiter
	fetcher  client.Client
	logger   logger.Logger
}

type Params struct {
	Sessions Sessions
	// Limiter may be nil: the deployment variant without rate
	// limiting treats every call as allowed.
	Limiter limiter.Limiter
	Fetcher client.Client
	Logger  logger.Logger
}

func New(p Params) *Pipeline {
	log := p.Logger
	if log == nil {
		log = logger.NewNop()
	}
	return &Pipeline{
		sessions: p.Sessions,
		limiter:  p.Limiter,
		fetcher:  p.Fetcher,
		logger:   log,
	}
}

// Handle runs one invocation for the given user and raw argument,
// short-circuiting on the first failed step. No step retries.
func (p *Pipeline) Handle(ctx context.Context, userID, arg string) Outcome {
	if !isNumeric(arg) {
		return Outcome{Reply: ReplyInvalidUID}
	}

	if p.throttled(ctx, userID) {
		return Outcome{Reply: ReplyThrottled}
	}

	httpClient, err := p.sessions.Client()
	if err != nil {
		p.logger.DebugW("invocation before session ready", "user", userID)
		return Outcome{Reply: ReplyStarting}
	}

	raw, err := p.fetcher.FetchProfile(ctx, httpClient, arg)
	if err != nil {
		p.logger.WarnW("profile fetch failed", "user", userID, "uid", arg, "error", err)
		return Outcome{Reply: ReplyUnavailable}
	}

	view := freefire.Extract(raw, arg)
	report := freefire.Render(view)

	return Outcome{Report: &report}
}

func (p *Pipeline) throttled(ctx context.Context, userID string) bool {
	if p.limiter == nil {
		return false
	}

	decision, err := p.limiter.Check(ctx, userID)
	if err != nil {
		// Fail open: a broken limiter should not take the command down.
		p.logger.WarnW("rate limit check failed", "user", userID, "error", err)
		return false
	}
	return decision == limiter.Throttled
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
