package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/stipendium/internal/tracker"
)

// Journal is a write-only audit trail of tracker changes. Nothing reads
// tracker state back from it.
type Journal interface {
	Close() error
	ApplyMigrations(dir string) error

	Append(event tracker.Event) error
	ListEvents(limit int) ([]Record, error)
}

// BaseJournal provides common functionality for different DB implementations
type BaseJournal struct {
	DB        *sqlx.DB
	Converter func(string) string
	Now       func() time.Time
}

func (j *BaseJournal) Close() error {
	if j.DB != nil {
		return j.DB.Close()
	}
	return nil
}

// ApplyMigrations applies SQL migrations from a directory in name order,
// translating dialect if needed
func (j *BaseJournal) ApplyMigrations(dir string, translateSQL func(string) string) error {
	files, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	names := make([]string, 0, len(files))
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".sql") {
			continue
		}
		names = append(names, file.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}

		sql := string(content)
		if translateSQL != nil {
			sql = translateSQL(sql)
		}

		logger.Info.Printf("Applying migration: %s", name)
		if _, err := j.DB.Exec(sql); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", name, err)
		}
	}

	return nil
}

func (j *BaseJournal) Append(event tracker.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", event.Entity, err)
	}

	now := time.Now
	if j.Now != nil {
		now = j.Now
	}

	record := Record{
		RecordedAt: now().UTC().UnixMilli(),
		Entity:     string(event.Entity),
		Kind:       string(event.Kind),
		EntityID:   event.ID,
		Payload:    string(payload),
	}

	_, err = j.DB.NamedExec(`
		INSERT INTO change_journal (recorded_at, entity, kind, entity_id, payload)
		VALUES (:recorded_at, :entity, :kind, :entity_id, :payload)
	`, record)
	if err != nil {
		return fmt.Errorf("failed to append journal record: %w", err)
	}
	return nil
}

// ListEvents returns the oldest limit records, all of them when limit <= 0.
func (j *BaseJournal) ListEvents(limit int) ([]Record, error) {
	query := `
		SELECT id, recorded_at, entity, kind, entity_id, payload
		FROM change_journal
		ORDER BY id ASC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	records := []Record{}
	if err := j.DB.Select(&records, j.Converter(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list journal records: %w", err)
	}
	return records, nil
}

// Observer adapts j to a tracker observer. Journal failures are logged and
// never undo the change that triggered them.
func Observer(j Journal) tracker.Observer {
	return func(event tracker.Event) {
		if err := j.Append(event); err != nil {
			logger.Error.Printf("Failed to journal %s %s #%d: %v", event.Entity, event.Kind, event.ID, err)
		}
	}
}
