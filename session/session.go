// Package session owns the single shared outbound HTTP client. Its
// lifecycle tracks the host gateway connection: the client exists only
// between the first "ready" event and the disconnect that follows.
package session

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/uniquetopup/ff_info_bot/logger"
)

// ErrNotReady signals that the shared client is not available yet, or
// not anymore. Transient from the caller's point of view.
var ErrNotReady = errors.New("session is not ready")

// State is the lifecycle state of the shared client.
type State int

const (
	Uninitialized State = iota
	Ready
	Closed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Ready:
		return "ready"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

const defaultTimeout = 15 * time.Second

// Manager is the only component allowed to construct or release the
// shared HTTP client. Concurrent readers get the same handle; the
// client itself is safe for concurrent requests and is never mutated
// after construction.
type Manager struct {
	mu      sync.RWMutex
	state   State
	client  *http.Client
	timeout time.Duration
	logger  logger.Logger
}

type Params struct {
	Timeout time.Duration
	Logger  logger.Logger
}

func New(p Params) *Manager {
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	log := p.Logger
	if log == nil {
		log = logger.NewNop()
	}
	return &Manager{
		timeout: timeout,
		logger:  log,
	}
}

// HandleReady constructs the shared client on the first ready event.
// Idempotent: repeat ready events (gateway resumes) are no-ops, and a
// ready event after Closed is ignored.
func (m *Manager) HandleReady() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != Uninitialized {
		return
	}

	m.client = &http.Client{Timeout: m.timeout}
	m.state = Ready
	m.logger.InfoW("session ready", "timeout", m.timeout)
}

// HandleDisconnect releases the shared client. In-flight requests are
// not cancelled; they run to completion or fail with a transport error
// that downstream classifies as a service failure.
func (m *Manager) HandleDisconnect() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != Ready {
		return
	}

	m.client.CloseIdleConnections()
	m.client = nil
	m.state = Closed
	m.logger.InfoW("session closed")
}

// Client returns the shared HTTP client, or ErrNotReady while the
// session is Uninitialized or Closed.
func (m *Manager) Client() (*http.Client, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.state != Ready {
		return nil, ErrNotReady
	}
	return m.client, nil
}

// State reports the current lifecycle state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}
