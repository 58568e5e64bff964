package main

import (
	"encoding/json"
	"os"

	"github.com/charmbracelet/log"
	"github.com/establishmentmg/minigames-bot/internal/database"
	"github.com/establishmentmg/minigames-bot/internal/stats"
	"github.com/joho/godotenv"
)

// legacyRecord is the shape of the pre-database user_stats.json file.
type legacyRecord struct {
	Wins   int      `json:"wins"`
	BR     []string `json:"br"`
	Events []string `json:"events"`
}

func main() {
	log.Info("Starting legacy stats migration...")

	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	statsFile := os.Getenv("STATS_FILE")
	if statsFile == "" {
		statsFile = "user_stats.json"
	}
	dbName, ok := os.LookupEnv("DB_NAME")
	if !ok {
		log.Fatalf("Error: Required environment variable DB_NAME is not set.")
	}

	data, err := os.ReadFile(statsFile)
	if err != nil {
		log.Fatalf("Failed to read %s: %s", statsFile, err)
	}

	var legacy map[string]legacyRecord
	if err := json.Unmarshal(data, &legacy); err != nil {
		log.Fatalf("Failed to parse %s: %s", statsFile, err)
	}

	db, teardown, err := database.InitDB(dbName, os.Getenv("TURSO_PRIMARY_URL"), os.Getenv("TURSO_AUTH_TOKEN"), "./migrations")
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	store := stats.New(db)
	for userID, record := range legacy {
		// The legacy wins counter drifted; recompute from the event log.
		wins := stats.ComputeWins(record.Events, record.BR)
		if err := store.Save(userID, wins, record.BR, record.Events, 0); err != nil {
			log.Error("Failed to migrate user", "userID", userID, "error", err)
			continue
		}
		log.Info("Migrated user", "userID", userID, "events", len(record.Events), "wins", wins)
	}

	log.Info("Migration complete!", "users", len(legacy))
}
