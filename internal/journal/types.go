package journal

type DatabaseType string

const (
	DBTypePostgres DatabaseType = "postgres"
	DBTypeSQLite   DatabaseType = "sqlite"
)

type Record struct {
	ID         int64  `db:"id" json:"id"`
	RecordedAt int64  `db:"recorded_at" json:"recorded_at"`
	Entity     string `db:"entity" json:"entity"`
	Kind       string `db:"kind" json:"kind"`
	EntityID   int64  `db:"entity_id" json:"entity_id"`
	Payload    string `db:"payload" json:"payload"`
}
