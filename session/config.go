package session

import "time"

// Config holds session lifecycle configuration.
type Config struct {
	// Timeout bounds every outbound request made through the shared
	// client. Zero means the package default.
	Timeout time.Duration `yaml:"timeout"`
}
