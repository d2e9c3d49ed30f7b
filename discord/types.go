package discord

import "context"

// Discord defines the interface for the gateway client.
type Discord interface {
	Start(ctx context.Context) error
	Stop() error
}
