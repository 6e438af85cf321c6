// Package transform normalizes the backend's inconsistently shaped JSON
// payloads into the canonical shapes in types. Every transformer is total:
// malformed or incomplete input degrades to defaults, never to an error.
package transform

import (
	"strconv"
	"strings"
	"time"
)

// Raw is one decoded JSON object as produced by encoding/json.
type Raw = map[string]interface{}

func asObject(v interface{}) Raw {
	m, _ := v.(map[string]interface{})
	return m
}

func asArray(v interface{}) []interface{} {
	a, _ := v.([]interface{})
	return a
}

// asString renders scalars the way the backend mixes them: strings pass
// through, numbers are stringified (pincodes and years arrive as both).
// Booleans and composites are not usable as field text.
func asString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	default:
		return ""
	}
}

func asInt(v interface{}) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}

func asFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// truthy follows the source API's JavaScript heritage: empty strings, zero
// and nil are false, any non-empty string (including "false") is true.
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case int:
		return t != 0
	default:
		return true
	}
}

// asStrings normalizes a raw array into a string slice, stringifying each
// entry and dropping empties. Non-array input yields nil.
func asStrings(v interface{}) []string {
	arr := asArray(v)
	if arr == nil {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		if s := asString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// stringOrList accepts either a scalar or an array source and always
// returns a slice, synthesizing a one-element slice from a scalar.
func stringOrList(v interface{}) []string {
	if _, ok := v.([]interface{}); ok {
		return asStrings(v)
	}
	if s := asString(v); s != "" {
		return []string{s}
	}
	return nil
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTime understands the three timestamp shapes the backend emits: ISO
// strings, Firestore-style {_seconds} objects and Unix-second numbers.
func parseTime(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case string:
		for _, layout := range timeLayouts {
			if ts, err := time.Parse(layout, t); err == nil {
				return ts, true
			}
		}
	case map[string]interface{}:
		if secs, ok := t["_seconds"]; ok {
			return time.Unix(int64(asFloat(secs)), 0).UTC(), true
		}
	case float64:
		if t > 0 {
			return time.Unix(int64(t), 0).UTC(), true
		}
	}
	return time.Time{}, false
}

// resolveTime walks the candidates in precedence order and falls back to
// the current time when none parse.
func resolveTime(candidates ...interface{}) time.Time {
	for _, c := range candidates {
		if ts, ok := parseTime(c); ok {
			return ts
		}
	}
	return time.Now().UTC()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
