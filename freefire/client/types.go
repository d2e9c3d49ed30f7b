package client

import (
	"context"
	"errors"
	"net/http"

	"github.com/uniquetopup/ff_info_bot/models"
)

// ErrServiceUnavailable classifies every fetch failure: non-2xx status,
// transport error, or an unparseable body. Callers cannot distinguish
// network failures from remote-side failures and should not try.
var ErrServiceUnavailable = errors.New("free fire service unavailable")

// Client defines the interface for fetching account profiles. The HTTP
// client is supplied per call by the session owner; implementations
// must not retain it.
type Client interface {
	FetchProfile(ctx context.Context, httpClient *http.Client, uid string) (models.RawProfile, error)
}
