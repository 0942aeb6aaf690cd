package config

import (
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "bearer token only",
			mutate: func(c *Config) { c.TMDb.APIKey = "" },
		},
		{
			name:   "api key only",
			mutate: func(c *Config) { c.TMDb.BearerToken = "" },
		},
		{
			name: "no credentials",
			mutate: func(c *Config) {
				c.TMDb.BearerToken = ""
				c.TMDb.APIKey = ""
			},
			wantErr: true,
		},
		{
			name:    "invalid logging level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "invalid logging format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				TMDb: TMDbConfig{
					BearerToken: "token",
					APIKey:      "key",
					Language:    "en-US",
				},
				Logging: LoggingConfig{
					Level:  "info",
					Format: "console",
				},
			}
			tt.mutate(cfg)

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFileUsesEnv(t *testing.T) {
	t.Setenv("TMDBCTL_TMDB_API_KEY", "env-key")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TMDb.APIKey != "env-key" {
		t.Errorf("TMDb.APIKey = %q, want %q", cfg.TMDb.APIKey, "env-key")
	}
	if cfg.TMDb.Language != "en-US" {
		t.Errorf("TMDb.Language = %q, want default en-US", cfg.TMDb.Language)
	}
}
