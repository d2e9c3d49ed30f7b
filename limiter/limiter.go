// Package limiter bounds how often each invoking user may run the
// profile command. Policy: one accepted invocation per user per fixed
// window; throttled attempts neither consume nor extend the window.
package limiter

import (
	"context"
	"time"
)

// Decision is the outcome of a rate-limit check.
type Decision int

const (
	Allowed Decision = iota
	Throttled
)

func (d Decision) String() string {
	if d == Throttled {
		return "throttled"
	}
	return "allowed"
}

// Limiter checks whether a user may invoke the command now. A nil
// Limiter (deployment variant without rate limiting) means every call
// is allowed; callers handle that, not implementations.
type Limiter interface {
	Check(ctx context.Context, userID string) (Decision, error)
}

// Config holds rate limiter configuration.
type Config struct {
	// Backend selects the implementation: "memory", "sqlite", or
	// "none" to disable limiting.
	Backend  string        `yaml:"backend"`
	Window   time.Duration `yaml:"window"`
	MaxUsers int           `yaml:"max_users"`
}

// Defaults applies default values to the config.
func (c *Config) Defaults() {
	if c.Backend == "" {
		c.Backend = "memory"
	}
	if c.Window <= 0 {
		c.Window = 10 * time.Second
	}
	if c.MaxUsers <= 0 {
		c.MaxUsers = 1024
	}
}
