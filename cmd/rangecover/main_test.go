package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const partTwo = `# part two example
pos=<10,12,12>, r=2
pos=<12,14,12>, r=2
pos=<16,12,12>, r=4
pos=<14,14,14>, r=6
pos=<50,50,50>, r=200
pos=<10,10,10>, r=5
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeRanges(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ranges.txt")
	if err := os.WriteFile(path, []byte(partTwo), 0644); err != nil {
		t.Fatalf("write ranges: %v", err)
	}
	return path
}

func TestSolveCommand(t *testing.T) {
	path := writeRanges(t)
	out, err := run(t, "solve", path)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if got, want := strings.TrimSpace(out), "point=<12,12,12> count=5 distance=36"; got != want {
		t.Fatalf("solve output = %q, want %q", got, want)
	}

	if _, err := run(t, "solve", filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("solve of missing file succeeded")
	}
}

func TestImportQueryCovering(t *testing.T) {
	path := writeRanges(t)
	dbPath := filepath.Join(t.TempDir(), "ranges.sqlite")

	out, err := run(t, "--db", dbPath, "import", path, "--name", "example")
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	id := strings.TrimSpace(out)
	if id == "" {
		t.Fatalf("import printed no dataset id")
	}

	out, err = run(t, "--db", dbPath, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, id) || !strings.Contains(out, "example\t6") {
		t.Fatalf("list output = %q, want dataset %s with 6 ranges", out, id)
	}

	out, err = run(t, "--db", dbPath, "query", id)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if !strings.Contains(out, "point=<12,12,12> count=5 distance=36") {
		t.Fatalf("query output = %q", out)
	}

	out, err = run(t, "--db", dbPath, "covering", id, "12,12,12")
	if err != nil {
		t.Fatalf("covering failed: %v", err)
	}
	if !strings.Contains(out, "5 ranges contain <12,12,12>") {
		t.Fatalf("covering output = %q", out)
	}

	if _, err := run(t, "--db", dbPath, "covering", id, "1,2"); err == nil {
		t.Fatalf("covering with malformed point succeeded")
	}
}

func TestParseCoord(t *testing.T) {
	c, err := parseCoord(" <1, -2,3> ")
	if err != nil {
		t.Fatalf("parseCoord failed: %v", err)
	}
	if c[0] != 1 || c[1] != -2 || c[2] != 3 {
		t.Fatalf("parseCoord = %v, want <1,-2,3>", c)
	}
	if _, err := parseCoord("1,x,3"); err == nil {
		t.Fatalf("parseCoord accepted non-integer")
	}
}
