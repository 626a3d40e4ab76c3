package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadPairs reads one pair of numbers per line from r. Blank lines and lines
// starting with # are skipped. Commas are accepted as separators.
func ReadPairs(r io.Reader) ([][2]float64, error) {
	var pairs [][2]float64
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(strings.ReplaceAll(text, ",", " "))
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected 2 values, got %d", line, len(fields))
		}
		pair, err := ParsePair(fields[0], fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		pairs = append(pairs, pair)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return pairs, nil
}

// ParsePair parses two decimal numbers.
func ParsePair(a, b string) ([2]float64, error) {
	x, err := strconv.ParseFloat(a, 64)
	if err != nil {
		return [2]float64{}, fmt.Errorf("invalid number %q", a)
	}
	y, err := strconv.ParseFloat(b, 64)
	if err != nil {
		return [2]float64{}, fmt.Errorf("invalid number %q", b)
	}
	return [2]float64{x, y}, nil
}
