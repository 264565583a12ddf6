package main

import (
	"fmt"
	"strconv"
	"strings"

	pm "github.com/azargarov/parmat"
)

// parseMatrix reads "ROWSxCOLS:v1,v2,..." with values in row-major order.
func parseMatrix[T pm.Number](text string, parse func(string) (T, error)) (*pm.Matrix[T], error) {
	shape, values, ok := strings.Cut(text, ":")
	if !ok {
		return nil, fmt.Errorf("matrix %q: missing ':' between shape and values", text)
	}
	rs, cs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(shape)), "x")
	if !ok {
		return nil, fmt.Errorf("matrix %q: shape must be ROWSxCOLS", text)
	}
	rows, err := strconv.Atoi(rs)
	if err != nil {
		return nil, fmt.Errorf("matrix %q: rows: %w", text, err)
	}
	cols, err := strconv.Atoi(cs)
	if err != nil {
		return nil, fmt.Errorf("matrix %q: cols: %w", text, err)
	}

	var data []T
	if values = strings.TrimSpace(values); values != "" {
		fields := strings.Split(values, ",")
		data = make([]T, 0, len(fields))
		for _, f := range fields {
			v, err := parse(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("matrix %q: %w", text, err)
			}
			data = append(data, v)
		}
	}
	return pm.NewChecked(rows, cols, data)
}

func parseInt(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }

func parseFloat(s string) (float64, error) { return strconv.ParseFloat(s, 64) }
