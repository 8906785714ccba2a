package model

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// The backend is assembled from services that disagree on field naming:
// camelCase, snake_case and legacy names all occur, and numeric ids may be
// serialized as JSON numbers or strings. Each entity decodes from a raw
// object and picks the first alias that is present and non-null, so the
// tolerated variants are enumerated in one place per type.

func firstRaw(obj map[string]json.RawMessage, keys ...string) (json.RawMessage, bool) {
	for _, key := range keys {
		raw, ok := obj[key]
		if !ok || len(raw) == 0 || string(raw) == "null" {
			continue
		}
		return raw, true
	}
	return nil, false
}

func pickString(obj map[string]json.RawMessage, keys ...string) string {
	raw, ok := firstRaw(obj, keys...)
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.Trim(string(raw), `"`)
}

// pickID canonicalizes a JSON number or string id to its string form.
func pickID(obj map[string]json.RawMessage, keys ...string) string {
	raw, ok := firstRaw(obj, keys...)
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func pickFloat(obj map[string]json.RawMessage, keys ...string) float64 {
	raw, ok := firstRaw(obj, keys...)
	if !ok {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return parsed
		}
	}
	return 0
}

func pickInt(obj map[string]json.RawMessage, keys ...string) int {
	raw, ok := firstRaw(obj, keys...)
	if !ok {
		return 0
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if parsed, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return parsed
		}
	}
	return 0
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func pickTime(obj map[string]json.RawMessage, keys ...string) time.Time {
	value := pickString(obj, keys...)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// pickIntList decodes a list of seat ids that may mix numbers and strings.
func pickIntList(obj map[string]json.RawMessage, keys ...string) []int {
	raw, ok := firstRaw(obj, keys...)
	if !ok {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	out := make([]int, 0, len(items))
	for _, item := range items {
		var n int
		if err := json.Unmarshal(item, &n); err == nil {
			out = append(out, n)
			continue
		}
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			if parsed, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
				out = append(out, parsed)
			}
		}
	}
	return out
}

// SameID reports whether two canonical ids refer to the same entity.
// Ids arrive as string or number across endpoints, so comparison happens on
// the trimmed string form.
func SameID(a string, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return false
	}
	return a == b
}
