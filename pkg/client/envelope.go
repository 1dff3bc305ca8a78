package client

import (
	"fmt"
	"sort"

	json "github.com/goccy/go-json"
)

// The backend wraps list payloads in three shapes:
//
//	{"success": true, "data": [...]}   the common envelope
//	[...]                              a bare array (older endpoints)
//	{"jobs": [...], "total": 12}       an object with one array-valued field
//
// normalizeList resolves all three to a flat slice once, at the API-module
// boundary, so nothing downstream ever sees an envelope. Any other shape
// yields an empty slice, never an error.
func normalizeList[T any](raw []byte) []T {
	// Bare array.
	var items []T
	if err := json.Unmarshal(raw, &items); err == nil {
		if items == nil {
			return []T{}
		}
		return items
	}

	// Success envelope.
	var env struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 {
		items = nil
		if err := json.Unmarshal(env.Data, &items); err == nil && items != nil {
			return items
		}
	}

	// Wrapped object: take the first field that decodes as a T array.
	// Keys are visited in sorted order so the result is deterministic.
	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapped); err == nil {
		keys := make([]string, 0, len(wrapped))
		for k := range wrapped {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			items = nil
			if err := json.Unmarshal(wrapped[k], &items); err == nil && items != nil {
				return items
			}
		}
	}

	return []T{}
}

// normalizeObject decodes a single-record response that may or may not be
// wrapped in the success envelope.
func normalizeObject[T any](raw []byte) (*T, error) {
	var env struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 {
		var obj T
		if err := json.Unmarshal(env.Data, &obj); err == nil {
			return &obj, nil
		}
	}
	var obj T
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &obj, nil
}
