package config

import (
	"testing"
	"time"
)

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load must fail when API_KEY is unset")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.DBName != "playquest" {
		t.Errorf("DBName = %q, want playquest", cfg.DBName)
	}
	if cfg.RankRecomputeEvery != 15*time.Minute {
		t.Errorf("RankRecomputeEvery = %v, want 15m", cfg.RankRecomputeEvery)
	}
	if cfg.QuestCatalogPath != ConfigPathQuestCatalog {
		t.Errorf("QuestCatalogPath = %q", cfg.QuestCatalogPath)
	}
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	t.Setenv("PORT", "not-a-port")

	if _, err := Load(); err == nil {
		t.Fatal("Load must reject a non-numeric PORT")
	}
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "u",
		DBPassword: "p",
		DBHost:     "db",
		DBPort:     "5433",
		DBName:     "quests",
	}

	want := "postgres://u:p@db:5433/quests?sslmode=disable"
	if got := cfg.GetDBConnString(); got != want {
		t.Errorf("GetDBConnString() = %q, want %q", got, want)
	}
}
