package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/viant/rangecover/geom"
	"github.com/viant/rangecover/solver"
)

// SQLiteStore implements Store on a SQLite database opened with engine.Open.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteStore creates a SQLite-backed Store and ensures its schema exists.
func NewSQLiteStore(ctx context.Context, db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("store: db is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := EnsureSchema(ctx, db); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db, now: time.Now}, nil
}

// CreateDataset inserts a dataset row with a random UUID.
func (s *SQLiteStore) CreateDataset(ctx context.Context, name string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `INSERT INTO `+DatasetTable+`(id, name, created_at) VALUES(?, ?, ?)`,
		id, name, s.now().UTC().UnixNano())
	if err != nil {
		return "", fmt.Errorf("store: create dataset: %w", err)
	}
	return id, nil
}

// Datasets lists datasets with their range counts.
func (s *SQLiteStore) Datasets(ctx context.Context) ([]Dataset, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT d.id, d.name, d.created_at, COUNT(r.seq)
FROM `+DatasetTable+` d LEFT JOIN `+RangeTable+` r ON r.dataset_id = d.id
GROUP BY d.id, d.name, d.created_at
ORDER BY d.created_at, d.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Dataset
	for rows.Next() {
		var d Dataset
		var created int64
		if err := rows.Scan(&d.ID, &d.Name, &created, &d.Ranges); err != nil {
			return nil, err
		}
		d.CreatedAt = time.Unix(0, created).UTC()
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) exists(ctx context.Context, q interface {
	QueryRowContext(context.Context, string, ...any) *sql.Row
}, datasetID string) error {
	var one int
	err := q.QueryRowContext(ctx, `SELECT 1 FROM `+DatasetTable+` WHERE id = ?`, datasetID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("store: %q: %w", datasetID, ErrDatasetNotFound)
	}
	return err
}

// AddRanges validates and appends ranges in a single transaction.
func (s *SQLiteStore) AddRanges(ctx context.Context, datasetID string, ranges []geom.Range) error {
	if len(ranges) == 0 {
		return nil
	}
	if err := geom.Validate(ranges); err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := s.exists(ctx, tx, datasetID); err != nil {
		return err
	}
	var next int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq) + 1, 0) FROM `+RangeTable+` WHERE dataset_id = ?`, datasetID).Scan(&next); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO `+RangeTable+`(dataset_id, seq, center, radius) VALUES(?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, r := range ranges {
		if _, err := stmt.ExecContext(ctx, datasetID, next+int64(i), geom.EncodeCoord(r.Center), r.Radius); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Ranges loads a dataset's ranges ordered by insertion.
func (s *SQLiteStore) Ranges(ctx context.Context, datasetID string) ([]geom.Range, error) {
	if err := s.exists(ctx, s.db, datasetID); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `SELECT center, radius FROM `+RangeTable+` WHERE dataset_id = ? ORDER BY seq`, datasetID)
	if err != nil {
		return nil, err
	}
	return scanRanges(rows)
}

// Covering evaluates range_contains in SQL to find ranges that contain p.
func (s *SQLiteStore) Covering(ctx context.Context, datasetID string, p geom.Coord) ([]geom.Range, error) {
	if err := s.exists(ctx, s.db, datasetID); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `SELECT center, radius FROM `+RangeTable+`
WHERE dataset_id = ? AND range_contains(center, radius, ?) = 1 ORDER BY seq`, datasetID, geom.EncodeCoord(p))
	if err != nil {
		return nil, err
	}
	return scanRanges(rows)
}

func scanRanges(rows *sql.Rows) ([]geom.Range, error) {
	defer rows.Close()
	var out []geom.Range
	for rows.Next() {
		var blob []byte
		var r geom.Range
		if err := rows.Scan(&blob, &r.Radius); err != nil {
			return nil, err
		}
		c, err := geom.DecodeCoord(blob)
		if err != nil {
			return nil, err
		}
		r.Center = c
		out = append(out, r)
	}
	return out, rows.Err()
}

// RemoveDataset deletes a dataset, its ranges and its cached result.
func (s *SQLiteStore) RemoveDataset(ctx context.Context, datasetID string) error {
	if datasetID == "" {
		return fmt.Errorf("store: RemoveDataset called with empty id")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	if err := s.exists(ctx, tx, datasetID); err != nil {
		return err
	}
	for _, table := range []string{RangeTable, ResultTable} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE dataset_id = ?`, datasetID); err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM `+DatasetTable+` WHERE id = ?`, datasetID); err != nil {
		return err
	}
	return tx.Commit()
}

// SaveResult stores result as the dataset's cached answer.
func (s *SQLiteStore) SaveResult(ctx context.Context, datasetID string, result solver.Result) error {
	if err := s.exists(ctx, s.db, datasetID); err != nil {
		return err
	}
	proven := 0
	if result.Proven {
		proven = 1
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO `+ResultTable+`(dataset_id, point, count, distance, proven, steps, solved_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(dataset_id) DO UPDATE SET
  point = excluded.point,
  count = excluded.count,
  distance = excluded.distance,
  proven = excluded.proven,
  steps = excluded.steps,
  solved_at = excluded.solved_at`,
		datasetID, geom.EncodeCoord(result.Point), result.Count, result.Distance, proven, result.Stats.Steps, s.now().UTC().UnixNano())
	return err
}

// CachedResult returns the stored result unless the dataset's ranges changed
// since it was saved.
func (s *SQLiteStore) CachedResult(ctx context.Context, datasetID string) (solver.Result, bool, error) {
	var res solver.Result
	var blob []byte
	var proven int
	err := s.db.QueryRowContext(ctx, `SELECT point, count, distance, proven, steps FROM `+ResultTable+` WHERE dataset_id = ?`, datasetID).
		Scan(&blob, &res.Count, &res.Distance, &proven, &res.Stats.Steps)
	if errors.Is(err, sql.ErrNoRows) {
		return res, false, nil
	}
	if err != nil {
		return res, false, err
	}
	if res.Point, err = geom.DecodeCoord(blob); err != nil {
		return res, false, err
	}
	res.Proven = proven == 1
	return res, true, nil
}

// Ensure SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)
