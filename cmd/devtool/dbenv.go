package main

import (
	"fmt"
	"os"
	"strings"
)

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// buildDBURL resolves the database connection string the same way the
// service does: DB_URL wins, otherwise the individual DB_* vars with
// local-development defaults.
func buildDBURL() string {
	if dbURL := os.Getenv("DB_URL"); dbURL != "" {
		return dbURL
	}

	dbUser := getEnv("DB_USER", "postgres")
	dbPass := getEnv("DB_PASSWORD", "postgres")
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbName := getEnv("DB_NAME", appName)

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", dbUser, dbPass, dbHost, dbPort, dbName)
}

// redactPassword hides the password portion of a postgres URL for logging.
func redactPassword(connStr string) string {
	schemeEnd := strings.Index(connStr, "://")
	at := strings.LastIndex(connStr, "@")
	if schemeEnd == -1 || at == -1 || at < schemeEnd {
		return connStr
	}

	userInfo := connStr[schemeEnd+3 : at]
	colon := strings.Index(userInfo, ":")
	if colon == -1 {
		return connStr
	}

	return connStr[:schemeEnd+3] + userInfo[:colon] + ":***" + connStr[at:]
}
