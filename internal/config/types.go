package config

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	Discord       DiscordConfig
	Turso         TursoConfig
}

type DiscordConfig struct {
	Token   string
	GuildID string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
