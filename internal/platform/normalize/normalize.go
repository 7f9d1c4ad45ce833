// Package normalize maps inconsistent backend JSON onto stable view-model
// fields. Each entity's mapping is a list of fallback paths per field; the
// helpers here walk those paths over the decoded body and apply the
// documented zero-value defaults, so the mapping stays data rather than
// inline conditionals.
package normalize

import (
	"strconv"
	"strings"
)

// lookup walks a dot-delimited path ("patient.user.firstName") through nested
// JSON objects.
func lookup(m map[string]any, path string) (any, bool) {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Str returns the first non-empty string found along paths, or "".
func Str(m map[string]any, paths ...string) string {
	for _, p := range paths {
		v, ok := lookup(m, p)
		if !ok {
			continue
		}
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// Int returns the first numeric value found along paths, or 0. Backend ids
// arrive as JSON numbers or numeric strings depending on the resource.
func Int(m map[string]any, paths ...string) int {
	for _, p := range paths {
		v, ok := lookup(m, p)
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return int(n)
		case string:
			if i, err := strconv.Atoi(n); err == nil {
				return i
			}
		}
	}
	return 0
}

// Float returns the first numeric value found along paths, or 0.
func Float(m map[string]any, paths ...string) float64 {
	for _, p := range paths {
		v, ok := lookup(m, p)
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n
		case string:
			if f, err := strconv.ParseFloat(n, 64); err == nil {
				return f
			}
		}
	}
	return 0
}

// Join returns the first string array found along paths joined with sep, or "".
func Join(m map[string]any, sep string, paths ...string) string {
	for _, p := range paths {
		v, ok := lookup(m, p)
		if !ok {
			continue
		}
		arr, ok := v.([]any)
		if !ok || len(arr) == 0 {
			continue
		}
		parts := make([]string, 0, len(arr))
		for _, e := range arr {
			if s, ok := e.(string); ok {
				parts = append(parts, s)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, sep)
		}
	}
	return ""
}

// FullName concatenates the first non-empty values of firstPaths and
// lastPaths with a space, tolerating either half being absent.
func FullName(m map[string]any, firstPath, lastPath string) string {
	first := Str(m, firstPath)
	last := Str(m, lastPath)
	return strings.TrimSpace(first + " " + last)
}

// PruneEmpty returns a copy of payload without nil and empty-string values,
// so partial writes never blank out backend fields.
func PruneEmpty(payload map[string]any) map[string]any {
	out := make(map[string]any, len(payload))
	for k, v := range payload {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		out[k] = v
	}
	return out
}
