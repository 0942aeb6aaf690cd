package config

// Config represents the complete configuration structure
type Config struct {
	TMDb    TMDbConfig    `mapstructure:"tmdb"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TMDbConfig holds API connection details and locale defaults
type TMDbConfig struct {
	BearerToken string `mapstructure:"bearer_token"`
	APIKey      string `mapstructure:"api_key"`
	BaseURL     string `mapstructure:"base_url"`
	Language    string `mapstructure:"language"`
	Region      string `mapstructure:"region"`
}

// FilterConfig maps preset names to filter expressions
type FilterConfig map[string]string

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
