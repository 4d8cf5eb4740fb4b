package app

import (
	"fmt"
	"strings"

	"github.com/shrimpsizemoose/stipendium/internal/journal"
	"github.com/shrimpsizemoose/stipendium/internal/journal/postgres"
	"github.com/shrimpsizemoose/stipendium/internal/journal/sqlite"
)

func NewJournal(dsn, migrationsDir string) (journal.Journal, error) {
	dbType := journal.DBTypeSQLite
	if strings.HasPrefix(dsn, "postgres") {
		dbType = journal.DBTypePostgres
	}

	switch dbType {
	case journal.DBTypePostgres:
		j, err := postgres.NewPostgresJournal(dsn, migrationsDir)
		if err != nil {
			return nil, err
		}
		return j, nil
	case journal.DBTypeSQLite:
		j, err := sqlite.NewSQLiteJournal(dsn, migrationsDir)
		if err != nil {
			return nil, err
		}
		return j, nil
	default:
		return nil, fmt.Errorf("unable to determine database type from DSN: %s", dsn)
	}
}
