package discord

// Config holds Discord-specific configuration.
type Config struct {
	Token string `yaml:"token"`
	// ListenChannel restricts commands to one channel when set.
	ListenChannel string `yaml:"listen_channel"`
}
