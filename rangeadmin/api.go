package rangeadmin

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"modernc.org/sqlite/vtab"

	"github.com/viant/rangecover/coverage"
	"github.com/viant/rangecover/solver"
	"github.com/viant/rangecover/store"
)

// ModuleName is the virtual table module name.
const ModuleName = "range_admin"

// Module exposes dataset solving via a virtual table.
// Usage:
//
//	CREATE VIRTUAL TABLE range_admin USING range_admin(op);
//	SELECT op, x, y, z, count, distance, proven FROM range_admin WHERE op MATCH '<dataset id>';
//
// Returns a single row with op='cached' when a valid cached result exists,
// otherwise op='solved' after solving the dataset and persisting the result.
type Module struct {
	db      *sql.DB
	options coverage.Options
}

type Table struct {
	module *Module
}

type Cursor struct {
	table *Table
	rows  [][]vtab.Value
	pos   int
}

// Register registers the range_admin module on db. Solves run with options.
func Register(db *sql.DB, options coverage.Options) error {
	if err := vtab.RegisterModule(db, ModuleName, &Module{db: db, options: options}); err != nil {
		if !strings.Contains(err.Error(), "already registered") {
			return err
		}
	}
	return nil
}

const declaration = "CREATE TABLE %s(op, x, y, z, count, distance, proven)"

func (m *Module) Create(ctx vtab.Context, args []string) (vtab.Table, error) {
	return m.Connect(ctx, args)
}

func (m *Module) Connect(ctx vtab.Context, args []string) (vtab.Table, error) {
	if len(args) < 3 {
		return nil, fmt.Errorf("range_admin: need at least 3 args")
	}
	if err := ctx.Declare(fmt.Sprintf(declaration, args[2])); err != nil {
		return nil, err
	}
	return &Table{module: m}, nil
}

func (t *Table) BestIndex(info *vtab.IndexInfo) error {
	for i := range info.Constraints {
		c := &info.Constraints[i]
		if !c.Usable {
			continue
		}
		if c.Column == 0 && c.Op == vtab.OpMATCH {
			c.ArgIndex = 1
			info.IdxNum = 1
			break
		}
	}
	return nil
}

func (t *Table) Open() (vtab.Cursor, error) { return &Cursor{table: t}, nil }
func (t *Table) Disconnect() error          { return nil }
func (t *Table) Destroy() error             { return nil }

func (c *Cursor) Filter(idxNum int, idxStr string, vals []vtab.Value) error {
	c.rows = nil
	c.pos = 0
	if idxNum != 1 || len(vals) == 0 || vals[0] == nil {
		return nil
	}
	dataset, ok := vals[0].(string)
	if !ok {
		return fmt.Errorf("range_admin: MATCH expects dataset id as TEXT")
	}
	op, res, err := Resolve(context.Background(), c.table.module.db, dataset, c.table.module.options)
	if err != nil {
		return err
	}
	proven := int64(0)
	if res.Proven {
		proven = 1
	}
	c.rows = [][]vtab.Value{{op, res.Point[0], res.Point[1], res.Point[2], int64(res.Count), res.Distance, proven}}
	return nil
}

func (c *Cursor) Next() error {
	if c.pos < len(c.rows) {
		c.pos++
	}
	return nil
}

func (c *Cursor) Eof() bool { return c.pos >= len(c.rows) }

func (c *Cursor) Column(col int) (vtab.Value, error) {
	if c.pos < 0 || c.pos >= len(c.rows) {
		return nil, fmt.Errorf("range_admin: Column out of range")
	}
	row := c.rows[c.pos]
	if col < 0 || col >= len(row) {
		return nil, nil
	}
	return row[col], nil
}

func (c *Cursor) Rowid() (int64, error) { return int64(c.pos + 1), nil }

func (c *Cursor) Close() error {
	c.rows = nil
	c.pos = 0
	return nil
}

// Resolve returns the dataset's cached result, or solves it and caches the
// result. op is "cached" or "solved". A cached result that was not proven
// optimal is solved again.
func Resolve(ctx context.Context, db *sql.DB, dataset string, options coverage.Options) (string, solver.Result, error) {
	s, err := store.NewSQLiteStore(ctx, db)
	if err != nil {
		return "", solver.Result{}, err
	}
	if res, ok, err := s.CachedResult(ctx, dataset); err != nil {
		return "", solver.Result{}, err
	} else if ok && res.Proven {
		return "cached", res, nil
	}
	ranges, err := s.Ranges(ctx, dataset)
	if err != nil {
		return "", solver.Result{}, err
	}
	res, err := coverage.Solve(ctx, ranges, options)
	if err != nil {
		return "", solver.Result{}, fmt.Errorf("range_admin: solve %s: %w", dataset, err)
	}
	if err := s.SaveResult(ctx, dataset, res); err != nil {
		return "", solver.Result{}, err
	}
	return "solved", res, nil
}
