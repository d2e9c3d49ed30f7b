package freefire

// Config holds Free Fire account API client configuration. The user
// UID and API key are issued by the service and treated as opaque.
type Config struct {
	BaseURL   string `yaml:"base_url"`
	UserAgent string `yaml:"user_agent"`
	Region    string `yaml:"region"`
	UserUID   string `yaml:"user_uid"`
	APIKey    string `yaml:"api_key"`
}

// Defaults applies default values to the config.
func (c *Config) Defaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://proapis.hlgamingofficial.com"
	}
	if c.UserAgent == "" {
		c.UserAgent = "ff-info-bot/1.0"
	}
	if c.Region == "" {
		c.Region = "bd"
	}
}
