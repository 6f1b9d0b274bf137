package store

import (
	"context"
	"errors"
	"time"

	"github.com/viant/rangecover/geom"
	"github.com/viant/rangecover/solver"
)

// ErrDatasetNotFound is returned for operations on an unknown dataset.
var ErrDatasetNotFound = errors.New("store: dataset not found")

// Dataset describes a stored range set.
type Dataset struct {
	ID        string
	Name      string
	CreatedAt time.Time
	Ranges    int
}

// Store defines dataset persistence.
type Store interface {
	// CreateDataset registers a new, empty dataset and returns its id.
	CreateDataset(ctx context.Context, name string) (string, error)

	// Datasets lists datasets in creation order.
	Datasets(ctx context.Context) ([]Dataset, error)

	// AddRanges appends ranges to a dataset.
	AddRanges(ctx context.Context, datasetID string, ranges []geom.Range) error

	// Ranges loads a dataset's ranges in insertion order.
	Ranges(ctx context.Context, datasetID string) ([]geom.Range, error)

	// RemoveDataset deletes a dataset with its ranges and cached result.
	RemoveDataset(ctx context.Context, datasetID string) error

	// SaveResult caches the solved result for a dataset.
	SaveResult(ctx context.Context, datasetID string, result solver.Result) error

	// CachedResult returns the cached result, if one is still valid.
	CachedResult(ctx context.Context, datasetID string) (solver.Result, bool, error)

	// Covering returns the dataset's ranges that contain p.
	Covering(ctx context.Context, datasetID string, p geom.Coord) ([]geom.Range, error)
}
