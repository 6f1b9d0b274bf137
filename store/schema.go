package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

const (
	// DatasetTable lists datasets.
	DatasetTable = "range_datasets"
	// RangeTable holds ranges keyed by dataset and insertion sequence.
	RangeTable = "ranges"
	// ResultTable caches the solved result per dataset.
	ResultTable = "range_results"
)

var baseSchema = []string{
	`CREATE TABLE IF NOT EXISTS ` + DatasetTable + ` (
    id         TEXT PRIMARY KEY,
    name       TEXT NOT NULL DEFAULT '',
    created_at INTEGER NOT NULL
);`,
	`CREATE TABLE IF NOT EXISTS ` + RangeTable + ` (
    dataset_id TEXT NOT NULL,
    seq        INTEGER NOT NULL,
    center     BLOB NOT NULL,
    radius     INTEGER NOT NULL,
    PRIMARY KEY(dataset_id, seq)
);`,
	`CREATE TABLE IF NOT EXISTS ` + ResultTable + ` (
    dataset_id TEXT PRIMARY KEY,
    point      BLOB NOT NULL,
    count      INTEGER NOT NULL,
    distance   INTEGER NOT NULL,
    proven     INTEGER NOT NULL DEFAULT 1,
    steps      INTEGER NOT NULL DEFAULT 0,
    solved_at  INTEGER NOT NULL
);`,
}

// InvalidationTriggers returns AFTER INSERT/UPDATE/DELETE triggers on
// rangeTable that delete the cached rows in resultTable for the affected
// dataset.
func InvalidationTriggers(rangeTable, resultTable string) []string {
	base := sanitizeIdentifier(rangeTable)
	trigger := func(suffix, event, cond string) string {
		return fmt.Sprintf(`CREATE TRIGGER IF NOT EXISTS %s_%s AFTER %s ON %s
BEGIN
    DELETE FROM %s WHERE %s;
END;`, base, suffix, event, rangeTable, resultTable, cond)
	}
	return []string{
		trigger("ai", "INSERT", "dataset_id = NEW.dataset_id"),
		trigger("au", "UPDATE", "dataset_id = NEW.dataset_id OR dataset_id = OLD.dataset_id"),
		trigger("ad", "DELETE", "dataset_id = OLD.dataset_id"),
	}
}

// EnsureSchema creates the dataset, range and result tables and the
// invalidation triggers if they do not already exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	stmts := append(append([]string(nil), baseSchema...), InvalidationTriggers(RangeTable, ResultTable)...)
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("store: ensure schema: %w", err)
		}
	}
	return nil
}

func sanitizeIdentifier(name string) string {
	if name == "" {
		return ""
	}
	replacer := strings.NewReplacer(".", "_", "-", "_")
	return replacer.Replace(name)
}
