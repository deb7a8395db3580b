package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	DBName         string
	Port           string
	LogLevel       string
	Turso          TursoConfig
	Session        SessionConfig
	Redis          RedisConfig
	Slack          SlackConfig
	ProjectID      string
	DigestCron     string
	AllowedOrigins []string
}
type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
type SessionConfig struct {
	Secret     string
	TTL        time.Duration
	CookieName string
	Secure     bool
}
type RedisConfig struct {
	Addr     string
	Password string
}
type SlackConfig struct {
	Token         string
	ChannelID     string
	SigningSecret string
}

// PubSubEnabled reports whether match events go through Google Cloud Pub/Sub.
func (c Config) PubSubEnabled() bool {
	return c.ProjectID != ""
}
