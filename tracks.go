package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/a-bouts/geo-tools/latlon"
)

// readLocations loads one location per line, skipping blank lines and
// lines starting with '#'.
func readLocations(cfg latlon.Config, path string) ([]latlon.LatLon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open the file %q: %w", path, err)
	}
	defer f.Close()

	return scanLocations(cfg, f)
}

func scanLocations(cfg latlon.Config, r io.Reader) ([]latlon.LatLon, error) {
	var points []latlon.LatLon
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		s := strings.TrimSpace(scanner.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		p, err := cfg.ParseLocation(s)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading trackpoints: %w", err)
	}
	return points, nil
}
