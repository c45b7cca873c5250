package argv

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
)

// decodeJSON parses a single JSON document. Numbers beyond the float64
// range become ±Infinity instead of failing the whole document.
func decodeJSON(raw string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after JSON document")
	}
	return resolveNumbers(tree)
}

func resolveNumbers(node any) (any, error) {
	switch n := node.(type) {
	case json.Number:
		f, err := strconv.ParseFloat(n.String(), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, err
		}
		return f, nil
	case []any:
		for i, item := range n {
			v, err := resolveNumbers(item)
			if err != nil {
				return nil, err
			}
			n[i] = v
		}
		return n, nil
	case map[string]any:
		for key, item := range n {
			v, err := resolveNumbers(item)
			if err != nil {
				return nil, err
			}
			n[key] = v
		}
		return n, nil
	}
	return node, nil
}

// portableJSON copies a decoded tree, writing infinite numbers as
// "Infinity" or "-Infinity" so every encoder accepts it.
func portableJSON(node any) any {
	switch n := node.(type) {
	case float64:
		if math.IsInf(n, 0) {
			return formatNumber(n)
		}
		return n
	case []any:
		out := make([]any, len(n))
		for i, item := range n {
			out[i] = portableJSON(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(n))
		for key, item := range n {
			out[key] = portableJSON(item)
		}
		return out
	}
	return node
}
