package app

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexaid/backend/internal/config"
)

func TestNewApp(t *testing.T) {
	dbFile, err := os.CreateTemp("", "test-*.db")
	require.NoError(t, err)
	defer func() { require.NoError(t, os.Remove(dbFile.Name())) }()

	cfg := &config.Config{
		AppPort:      8000,
		DatabasePath: dbFile.Name(),
		ChatEnabled:  true,
		ChatProvider: "ollama",
		OllamaURL:    "http://localhost:11434",
		LogLevel:     "DEBUG",
	}

	app, err := NewApp(cfg)
	require.NoError(t, err)
	require.NotNil(t, app)

	defer func() { require.NoError(t, app.DB.Close()) }()

	assert.NotNil(t, app.DB)
	assert.NotNil(t, app.Server)
	assert.Equal(t, ":8000", app.Server.Addr)
}
