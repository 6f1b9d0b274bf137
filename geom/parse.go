package geom

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var rangePattern = regexp.MustCompile(`^pos=<\s*(-?\d+)\s*,\s*(-?\d+)\s*,\s*(-?\d+)\s*>\s*,\s*r\s*=\s*(-?\d+)$`)

// ParseRange parses a single range written as pos=<x,y,z>, r=radius.
func ParseRange(s string) (Range, error) {
	var r Range
	m := rangePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return r, fmt.Errorf("geom: malformed range %q", s)
	}
	for i := 0; i < Dims; i++ {
		v, err := strconv.ParseInt(m[i+1], 10, 64)
		if err != nil {
			return r, fmt.Errorf("geom: range %q axis %d: %w", s, i, err)
		}
		r.Center[i] = v
	}
	radius, err := strconv.ParseInt(m[4], 10, 64)
	if err != nil {
		return r, fmt.Errorf("geom: range %q radius: %w", s, err)
	}
	if radius < 0 {
		return r, fmt.Errorf("geom: range %q: %w", s, ErrNegativeRadius)
	}
	r.Radius = radius
	return r, nil
}

// ParseRanges reads one range per line. Blank lines and lines starting with
// '#' are skipped.
func ParseRanges(reader io.Reader) ([]Range, error) {
	scanner := bufio.NewScanner(reader)
	var out []Range
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		r, err := ParseRange(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
