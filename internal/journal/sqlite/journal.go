// internal/journal/sqlite/journal.go
package sqlite

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/shrimpsizemoose/stipendium/internal/journal"
)

type SQLiteJournal struct {
	journal.BaseJournal
}

func NewSQLiteJournal(dsn, migrationsDir string) (*SQLiteJournal, error) {
	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite: %w", err)
	}
	// every pooled connection to :memory: would be a separate empty database
	db.SetMaxOpenConns(1)

	j := &SQLiteJournal{BaseJournal: journal.BaseJournal{
		DB: db,
		Converter: func(query string) string {
			return query
		},
	}}

	if migrationsDir != "" {
		if err := j.ApplyMigrations(migrationsDir); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	return j, nil
}

func (j *SQLiteJournal) ApplyMigrations(dir string) error {
	return j.BaseJournal.ApplyMigrations(dir, translateToSQLite)
}

// longer patterns first, they win over their prefixes
var sqliteReplacer = strings.NewReplacer(
	"BIGSERIAL PRIMARY KEY", "INTEGER PRIMARY KEY AUTOINCREMENT",
	"SERIAL PRIMARY KEY", "INTEGER PRIMARY KEY AUTOINCREMENT",
	"BIGINT", "INTEGER",
	"now()", "CURRENT_TIMESTAMP",
	"::text", "",
)

// translateToSQLite converts Postgres SQL to SQLite dialect
func translateToSQLite(sql string) string {
	return sqliteReplacer.Replace(sql)
}
