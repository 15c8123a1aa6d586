package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "file:otakudojo.db", cfg.DBPath)
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, 2, cfg.PuzzlesPerType)
	assert.Equal(t, time.Hour, cfg.PackCheckInterval)
	assert.NoError(t, cfg.Validate())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("PUZZLES_PER_TYPE", "3")
	t.Setenv("PACK_CHECK_INTERVAL", "30m")

	cfg := Load()

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, 3, cfg.PuzzlesPerType)
	assert.Equal(t, 30*time.Minute, cfg.PackCheckInterval)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("PUZZLES_PER_TYPE", "lots")
	t.Setenv("PACK_CHECK_INTERVAL", "soon")

	cfg := Load()

	assert.Equal(t, 2, cfg.PuzzlesPerType)
	assert.Equal(t, time.Hour, cfg.PackCheckInterval)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}, wantErr: false},
		{name: "empty addr", mutate: func(c *Config) { c.Addr = "" }, wantErr: true},
		{name: "empty db path", mutate: func(c *Config) { c.DBPath = "" }, wantErr: true},
		{name: "zero puzzles per type", mutate: func(c *Config) { c.PuzzlesPerType = 0 }, wantErr: true},
		{name: "zero leaderboard limit", mutate: func(c *Config) { c.LeaderboardLimit = 0 }, wantErr: true},
		{name: "zero workers", mutate: func(c *Config) { c.PackWorkerCount = 0 }, wantErr: true},
		{name: "zero queue", mutate: func(c *Config) { c.PackQueueSize = 0 }, wantErr: true},
		{name: "tiny interval", mutate: func(c *Config) { c.PackCheckInterval = time.Second }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
