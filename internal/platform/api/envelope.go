package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DecodeList decodes a list response body. The backend is inconsistent about
// its envelope: some resources return {"data": [...], "total": n}, others a
// bare array. Callers always get a non-nil slice and a total >= 0.
func DecodeList(raw json.RawMessage) ([]map[string]any, int, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []map[string]any
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, 0, fmt.Errorf("decode list body: %w", err)
		}
		if items == nil {
			items = []map[string]any{}
		}
		return items, len(items), nil
	}

	var env struct {
		Data  []map[string]any `json:"data"`
		Total *int             `json:"total"`
	}
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, 0, fmt.Errorf("decode list envelope: %w", err)
	}
	if env.Data == nil {
		env.Data = []map[string]any{}
	}
	total := len(env.Data)
	if env.Total != nil && *env.Total >= 0 {
		total = *env.Total
	}
	return env.Data, total, nil
}

// DecodeObject decodes a single-resource body, unwrapping a {"data": {...}}
// envelope when present.
func DecodeObject(raw json.RawMessage) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("decode object body: %w", err)
	}
	if inner, ok := obj["data"].(map[string]any); ok && len(obj) == 1 {
		return inner, nil
	}
	return obj, nil
}
