package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/fc-ladder/internal/auth"
	"github.com/mauv0809/fc-ladder/internal/database"
	"github.com/mauv0809/fc-ladder/internal/ladder"
	"github.com/spf13/cobra"
)

var samplePlayers = []string{"Alex", "Sam", "Jordan", "Taylor"}

var reset bool

var rootCmd = &cobra.Command{
	Use:   "ladder-seeder",
	Short: "Seed the ladder database with an admin and sample players",
	RunE: func(cmd *cobra.Command, args []string) error {
		return seed(loadConfig(), reset)
	},
}

func init() {
	rootCmd.Flags().BoolVar(&reset, "reset", false, "Delete all players and matches before seeding")
}

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{
		"DB_NAME":             getEnvOrDefault("DB_NAME", "ladder.db"),
		"TURSO_PRIMARY_URL":   os.Getenv("TURSO_PRIMARY_URL"),
		"TURSO_AUTH_TOKEN":    os.Getenv("TURSO_AUTH_TOKEN"),
		"SEED_ADMIN_USERNAME": getEnvOrDefault("SEED_ADMIN_USERNAME", "root"),
	}
	password, ok := os.LookupEnv("SEED_ADMIN_PASSWORD")
	if !ok || password == "" {
		log.Fatalf("Error: Required environment variable %s is not set.", "SEED_ADMIN_PASSWORD")
	}
	config["SEED_ADMIN_PASSWORD"] = password
	return config
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func seed(cfg map[string]string, reset bool) error {
	log.Info("Starting database seeder...")

	db, teardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer teardown()

	store := ladder.New(db)
	if reset {
		if err := store.Clear(); err != nil {
			return fmt.Errorf("failed to reset ladder: %w", err)
		}
		log.Info("Cleared all players and matches")
	}

	hash, err := auth.HashPassword(cfg["SEED_ADMIN_PASSWORD"])
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin, err := auth.New(db).CreateAdmin(cfg["SEED_ADMIN_USERNAME"], hash)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	log.Info("Ensured admin exists", "username", admin.Username)

	existing, err := store.ListActivePlayers()
	if err != nil {
		return fmt.Errorf("failed to list players: %w", err)
	}
	taken := make(map[string]bool, len(existing))
	for _, p := range existing {
		taken[strings.ToLower(p.Name)] = true
	}

	created := 0
	for _, name := range samplePlayers {
		if taken[strings.ToLower(name)] {
			continue
		}
		if _, err := store.CreatePlayer(name); err != nil {
			return fmt.Errorf("failed to create player %s: %w", name, err)
		}
		created++
	}
	log.Info("Seeding complete", "players_created", created)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Seeder failed: %s", err)
	}
}
