package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	var migrationPath, databaseURL string
	flag.StringVar(&databaseURL, "database_url", "", "database URL")
	flag.StringVar(&migrationPath, "migration-path", "", "path to the migrations")
	flag.Parse()

	if databaseURL == "" {
		panic("database URL is required")
	}
	if migrationPath == "" {
		panic("migration path is required")
	}

	m, err := migrate.New("file://"+migrationPath, fmt.Sprintf("postgres://%s", databaseURL))
	if err != nil {
		panic(err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("no migrations to apply")
			return
		}
		panic(err)
	}

	fmt.Println("migrations applied")
}
