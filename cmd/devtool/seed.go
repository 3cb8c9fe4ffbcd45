package main

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type SeedCommand struct{}

func (c *SeedCommand) Name() string {
	return "seed"
}

func (c *SeedCommand) Description() string {
	return "Seed database with data (dev, staging)"
}

func (c *SeedCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: dev, staging")
	}
	subcmd := args[0]

	dbURL := buildDBURL()
	PrintInfo("Connecting to database: %s", redactPassword(dbURL))

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	switch subcmd {
	case envDev:
		return c.runDevSeed(db)
	case envStaging:
		return c.runStagingSeed(db)
	default:
		return fmt.Errorf("unknown subcommand: %s", subcmd)
	}
}

// runDevSeed loads per-game XP rules plus a handful of demo players with
// session history, so the quest endpoints return something interesting on
// a fresh local database.
func (c *SeedCommand) runDevSeed(db *sql.DB) error {
	PrintInfo("Running dev seeds...")

	files := []string{
		"internal/database/seeds/dev_xp_rules.sql",
		"internal/database/seeds/dev_demo_players.sql",
	}

	for _, file := range files {
		if err := c.executeFile(db, file); err != nil {
			return err
		}
	}

	PrintSuccess("Dev seeds completed successfully")
	return nil
}

// runStagingSeed only loads the game XP rules; staging gets real traffic
// so demo players would pollute the leaderboards.
func (c *SeedCommand) runStagingSeed(db *sql.DB) error {
	PrintInfo("Running staging seeds...")

	files := []string{
		"internal/database/seeds/dev_xp_rules.sql",
	}

	for _, file := range files {
		if err := c.executeFile(db, file); err != nil {
			return err
		}
	}

	PrintSuccess("Staging seeds completed successfully")
	return nil
}

func (c *SeedCommand) executeFile(db *sql.DB, filepath string) error {
	PrintInfo("Executing %s...", filepath)

	content, err := os.ReadFile(filepath)
	if err != nil {
		return fmt.Errorf("failed to read seed file %s: %w", filepath, err)
	}

	if _, err := db.Exec(string(content)); err != nil {
		return fmt.Errorf("failed to execute seed file %s: %w", filepath, err)
	}

	return nil
}
