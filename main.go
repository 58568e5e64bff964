package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/establishmentmg/minigames-bot/internal/config"
	"github.com/establishmentmg/minigames-bot/internal/database"
	"github.com/establishmentmg/minigames-bot/internal/discord"
	"github.com/establishmentmg/minigames-bot/internal/events"
	"github.com/establishmentmg/minigames-bot/internal/gameindex"
	server "github.com/establishmentmg/minigames-bot/internal/http"
	"github.com/establishmentmg/minigames-bot/internal/metrics"
	"github.com/establishmentmg/minigames-bot/internal/stats"
	"github.com/establishmentmg/minigames-bot/internal/teams"
)

func main() {
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()

	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	statsStore := stats.New(db)
	teamStore := teams.New(db)
	registrar := events.New(statsStore)
	index := gameindex.New()
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()

	bot, err := discord.New(cfg.Discord.Token, cfg.Discord.GuildID, statsStore, registrar, teamStore, index, metricsSvc)
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %s", err)
	}
	if err := bot.Open(); err != nil {
		log.Fatalf("Failed to connect to Discord: %s", err)
	}
	defer func() {
		log.Info("Closing Discord connection")
		if err := bot.Close(); err != nil {
			log.Error("Failed to close Discord connection", "error", err)
		}
	}()

	s := server.NewServer(statsStore, teamStore, index, metricsSvc, metricsHandler, cfg)

	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Bot process shutting down")
}
