package engine

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"sync"

	sqlite "modernc.org/sqlite"

	"github.com/viant/rangecover/geom"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterFunctions registers range_manhattan and range_contains with the
// driver so they are available on connections opened after this call.
//
//	range_manhattan(a BLOB, b BLOB) -> INTEGER
//	range_contains(center BLOB, radius INTEGER, point BLOB) -> 0/1
func RegisterFunctions() error {
	registerOnce.Do(func() {
		for name, fn := range map[string]struct {
			args int
			impl func(*sqlite.FunctionContext, []driver.Value) (driver.Value, error)
		}{
			"range_manhattan": {2, rangeManhattanImpl},
			"range_contains":  {3, rangeContainsImpl},
		} {
			if err := sqlite.RegisterDeterministicScalarFunction(name, int32(fn.args), fn.impl); err != nil {
				if strings.Contains(err.Error(), "already registered") {
					continue
				}
				registerErr = fmt.Errorf("engine: register %s: %w", name, err)
				return
			}
		}
	})
	return registerErr
}

func asCoord(arg driver.Value) (geom.Coord, bool, error) {
	switch v := arg.(type) {
	case nil:
		return geom.Coord{}, false, nil
	case []byte:
		c, err := geom.DecodeCoord(v)
		return c, err == nil, err
	default:
		return geom.Coord{}, false, fmt.Errorf("range: unsupported argument type %T for coord; want BLOB", arg)
	}
}

func asInt(arg driver.Value) (int64, bool, error) {
	switch v := arg.(type) {
	case nil:
		return 0, false, nil
	case int64:
		return v, true, nil
	default:
		return 0, false, fmt.Errorf("range: unsupported argument type %T for radius; want INTEGER", arg)
	}
}

func rangeManhattanImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("range_manhattan: expected 2 arguments, got %d", len(args))
	}
	a, okA, err := asCoord(args[0])
	if err != nil {
		return nil, err
	}
	b, okB, err := asCoord(args[1])
	if err != nil {
		return nil, err
	}
	if !okA || !okB {
		return nil, nil
	}
	return geom.Manhattan(a, b)
}

func rangeContainsImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 3 {
		return nil, fmt.Errorf("range_contains: expected 3 arguments, got %d", len(args))
	}
	center, okC, err := asCoord(args[0])
	if err != nil {
		return nil, err
	}
	radius, okR, err := asInt(args[1])
	if err != nil {
		return nil, err
	}
	point, okP, err := asCoord(args[2])
	if err != nil {
		return nil, err
	}
	if !okC || !okR || !okP {
		return nil, nil
	}
	d, err := geom.Manhattan(center, point)
	if err != nil {
		return nil, err
	}
	if d <= radius {
		return int64(1), nil
	}
	return int64(0), nil
}
