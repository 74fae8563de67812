// Package dataset loads point sets from external data files. The
// format is two whitespace-separated columns (x, y) per line; blank
// lines and '#' comments are skipped, and a leading non-numeric line
// is treated as a header.
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hullbench/hullbench/internal/geometry"
)

// Load reads a point file from disk.
func Load(path string) ([]geometry.Point, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path is expected user input from the CLI
	if err != nil {
		return nil, fmt.Errorf("opening point file: %w", err)
	}
	defer func() { _ = f.Close() }()

	pts, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return pts, nil
}

// Parse reads points from r.
func Parse(r io.Reader) ([]geometry.Point, error) {
	var pts []geometry.Point
	scanner := bufio.NewScanner(r)
	lineNo := 0
	headerAllowed := true
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		p, err := parseLine(line)
		if err != nil {
			// A single non-numeric leading line is a header.
			if headerAllowed {
				headerAllowed = false
				continue
			}
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		headerAllowed = false
		pts = append(pts, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading point data: %w", err)
	}
	return pts, nil
}

func parseLine(line string) (geometry.Point, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return geometry.Point{}, fmt.Errorf("expected 2 columns, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return geometry.Point{}, fmt.Errorf("invalid x coordinate %q", fields[0])
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return geometry.Point{}, fmt.Errorf("invalid y coordinate %q", fields[1])
	}
	return geometry.Point{X: x, Y: y}, nil
}
