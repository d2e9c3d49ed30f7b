package limiter

import (
	"context"
	"sync"
	"time"

	"github.com/uniquetopup/ff_info_bot/clock"
)

var _ Limiter = (*Memory)(nil)

// Memory is an in-process fixed-window limiter. A single mutex
// serializes check-and-set so two near-simultaneous invocations from
// the same user cannot both pass. Tracked users are capped; the least
// recently seen entry is evicted when the cap is exceeded, so state
// stays bounded for the process lifetime.
type Memory struct {
	mu       sync.Mutex
	window   time.Duration
	maxUsers int
	clock    clock.Clock
	lastSeen map[string]time.Time
}

type MemoryParams struct {
	Window   time.Duration
	MaxUsers int
	Clock    clock.Clock
}

func NewMemory(p MemoryParams) *Memory {
	window := p.Window
	if window <= 0 {
		window = 10 * time.Second
	}
	maxUsers := p.MaxUsers
	if maxUsers <= 0 {
		maxUsers = 1024
	}
	clk := p.Clock
	if clk == nil {
		clk = clock.System()
	}
	return &Memory{
		window:   window,
		maxUsers: maxUsers,
		clock:    clk,
		lastSeen: make(map[string]time.Time),
	}
}

func (m *Memory) Check(_ context.Context, userID string) (Decision, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock.Now()

	if last, ok := m.lastSeen[userID]; ok && now.Sub(last) < m.window {
		return Throttled, nil
	}

	m.lastSeen[userID] = now
	m.evictLocked(now)

	return Allowed, nil
}

func (m *Memory) evictLocked(now time.Time) {
	if len(m.lastSeen) <= m.maxUsers {
		return
	}

	// Drop expired windows first; they can never throttle again.
	for id, last := range m.lastSeen {
		if now.Sub(last) >= m.window {
			delete(m.lastSeen, id)
		}
	}

	for len(m.lastSeen) > m.maxUsers {
		oldestID := ""
		var oldest time.Time
		for id, last := range m.lastSeen {
			if oldestID == "" || last.Before(oldest) {
				oldestID = id
				oldest = last
			}
		}
		delete(m.lastSeen, oldestID)
	}
}
