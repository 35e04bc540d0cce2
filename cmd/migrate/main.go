package main

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"

	_ "github.com/lib/pq"
	migrate "github.com/rubenv/sql-migrate"

	"github.com/gasparllamazares/LRM-ReservationService/internal/config"
	"github.com/gasparllamazares/LRM-ReservationService/pkg/logger"
)

const migrationsDir = "migrations"

// Применяет SQL миграции из каталога migrations
// Использование: migrate [up|down [steps]]
func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	direction := migrate.Up
	steps := 0 // 0 - без ограничения

	if len(os.Args) > 1 && os.Args[1] == "down" {
		direction = migrate.Down
		steps = 1
		if len(os.Args) > 2 {
			steps, err = strconv.Atoi(os.Args[2])
			if err != nil {
				log.Fatal("Invalid steps argument: %v", err)
			}
		}
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	source := &migrate.FileMigrationSource{Dir: migrationsDir}

	n, err := migrate.ExecMax(db, "postgres", source, direction, steps)
	if err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}

	if n == 0 {
		log.Info("No migrations to apply")
	} else {
		log.Info("Applied %d migration(s)", n)
	}
}
