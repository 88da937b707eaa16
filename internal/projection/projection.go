// Package projection implements the field projection applied to upstream
// record lists before they are returned to the frontend.
//
// A projection is a fixed allow-list: output key → source field path. It is
// a pure transformation with no validation, defaulting, or type checking —
// values are copied verbatim from whatever the upstream returned.
package projection

import "strings"

// Projection maps output keys to source field paths. Paths use dots to reach
// into nested objects (e.g. "fieldData.name").
type Projection map[string]string

// Apply projects every record of items through p.
//
// The result has the same length as items. Each element contains exactly the
// keys of p whose source path resolved in the corresponding input record;
// unresolved paths are omitted. Input records are never mutated.
//
// A nil or empty projection yields records with no keys, not the originals:
// callers that want passthrough should skip the projection entirely.
func (p Projection) Apply(items []map[string]any) []map[string]any {
	out := make([]map[string]any, len(items))
	for i, item := range items {
		projected := make(map[string]any, len(p))
		for key, path := range p {
			if value, ok := lookup(item, path); ok {
				projected[key] = value
			}
		}
		out[i] = projected
	}

	return out
}

// lookup resolves a dotted path inside a nested map structure.
func lookup(record map[string]any, path string) (any, bool) {
	segments := strings.Split(path, ".")

	var current any = record
	for _, segment := range segments {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}

		current, ok = obj[segment]
		if !ok {
			return nil, false
		}
	}

	return current, true
}
