package app

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"lexaid/backend/internal/api"
	"lexaid/backend/internal/config"
	"lexaid/backend/internal/database"
	"lexaid/backend/internal/llm"
	"lexaid/backend/internal/repository"
	"lexaid/backend/internal/service"
)

// App bundles the wired application: the database handle and the configured
// HTTP server.
type App struct {
	DB     *sql.DB
	Server *http.Server
}

// NewApp wires the full dependency graph from a loaded configuration:
// database, repository, provider factory, services, handlers and router.
func NewApp(cfg *config.Config) (*App, error) {
	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	slog.Info("Successfully connected to SQLite database.")

	repo := repository.NewSQLiteRepository(db)
	factory := llm.NewFactory(cfg)

	chatService := service.NewChatService(repo, factory)
	caseService := service.NewCaseService(repo)
	extractionService := service.NewExtractionService(repo, factory, caseService)

	chatHandler := api.NewChatHandler(chatService, extractionService, cfg)
	caseHandler := api.NewCaseHandler(caseService)
	router := api.NewRouter(chatHandler, caseHandler)

	server := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Disabled for streaming endpoints
		IdleTimeout:       120 * time.Second,
	}

	return &App{DB: db, Server: server}, nil
}

// Run loads configuration, wires the application and serves until the
// listener fails. The return value is the process exit code.
func Run() int {
	cfg, err := config.Load()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		return 1
	}
	defer func() {
		if err := app.DB.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	slog.Info("Starting server", "port", cfg.AppPort, "provider", cfg.ChatProvider, "chat_enabled", cfg.ChatEnabled)
	if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		return 1
	}

	return 0
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
