package postgres

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/shrimpsizemoose/stipendium/internal/journal"
)

type PostgresJournal struct {
	journal.BaseJournal
}

func NewPostgresJournal(dsn, migrationsDir string) (*PostgresJournal, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	j := &PostgresJournal{BaseJournal: journal.BaseJournal{
		DB:        db,
		Converter: numberPlaceholders,
	}}

	if migrationsDir != "" {
		if err := j.ApplyMigrations(migrationsDir); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	return j, nil
}

func (j *PostgresJournal) ApplyMigrations(dir string) error {
	return j.BaseJournal.ApplyMigrations(dir, nil)
}

// numberPlaceholders rewrites ? bind vars into $1, $2, ...
func numberPlaceholders(query string) string {
	out := query
	for i := 1; strings.Contains(out, "?"); i++ {
		out = strings.Replace(out, "?", fmt.Sprintf("$%d", i), 1)
	}
	return out
}
