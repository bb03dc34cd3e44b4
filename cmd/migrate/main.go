package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"

	"github.com/makmour/WasteBinTracker/internal/config"
	"github.com/makmour/WasteBinTracker/internal/database/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configs:", err)
	}
	if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBUser == "" || cfg.DBName == "" {
		log.Fatal("DB env vars are required to run migrations")
	}

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close connection: %v", err)
		}
	}()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	// Read the embedded schema
	sqlBytes, err := migrations.Files.ReadFile("schema.sql")
	if err != nil {
		log.Fatal("Failed to read embedded SQL file:", err)
	}

	fmt.Println("Running migration...")
	if _, err := db.Exec(string(sqlBytes)); err != nil {
		log.Fatal("Failed to run migration:", err)
	}

	// List the tables so a typo'd schema is obvious right away
	rows, err := db.Query(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public'
		  AND table_name IN ('bin_survey_entries', 'users')
		ORDER BY table_name
	`)
	if err != nil {
		log.Fatal("Failed to verify tables:", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("Failed to close rows: %v", err)
		}
	}()

	fmt.Println("Tables created:")
	for rows.Next() {
		var table string
		if err := rows.Scan(&table); err != nil {
			log.Printf("Failed to scan table: %v", err)
			continue
		}
		fmt.Printf("  %s\n", table)
	}

	fmt.Println("Migration done.")
}
