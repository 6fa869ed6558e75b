package docstore

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Drivers hand back values in different shapes: Firestore gives int64 and time.Time,
// JSON-backed drivers give float64 or json.Number and RFC3339 strings. The readers
// below accept all of them and report ok=false when the field is missing or unusable.

// String reads a string field.
func String(fields map[string]any, key string) (string, bool) {
	v, ok := fields[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Int64 reads an integer field.
func Int64(fields map[string]any, key string) (int64, bool) {
	v, ok := fields[key]
	if !ok || v == nil {
		return 0, false
	}

	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float32:
		return int64(n), !math.IsNaN(float64(n))
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		return int64(f), err == nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}

// Decimal reads a number field rounded to places fractional digits.
func Decimal(fields map[string]any, key string, places int32) (decimal.Decimal, bool) {
	v, ok := fields[key]
	if !ok || v == nil {
		return decimal.Zero, false
	}

	var d decimal.Decimal
	switch n := v.(type) {
	case int:
		d = decimal.NewFromInt(int64(n))
	case int64:
		d = decimal.NewFromInt(n)
	case float32:
		d = decimal.NewFromFloat32(n)
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Zero, false
		}
		d = decimal.NewFromFloat(n)
	case json.Number:
		parsed, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Zero, false
		}
		d = parsed
	case string:
		parsed, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return decimal.Zero, false
		}
		d = parsed
	default:
		return decimal.Zero, false
	}
	return d.Round(places), true
}

// Time reads a timestamp field.
func Time(fields map[string]any, key string) (time.Time, bool) {
	v, ok := fields[key]
	if !ok || v == nil {
		return time.Time{}, false
	}

	switch t := v.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, true
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, t)
		return parsed, err == nil
	case int64:
		return time.Unix(t, 0).UTC(), true
	case float64:
		return time.Unix(int64(t), 0).UTC(), true
	case json.Number:
		i, err := t.Int64()
		return time.Unix(i, 0).UTC(), err == nil
	default:
		return time.Time{}, false
	}
}

// Equal compares a stored field value with a query value the way the drivers that
// filter in process need it: strings by value, numbers by numeric value.
func Equal(stored, want any) bool {
	if s, ok := stored.(string); ok {
		w, ok := want.(string)
		return ok && s == w
	}
	a, okA := Decimal(map[string]any{"v": stored}, "v", 16)
	b, okB := Decimal(map[string]any{"v": want}, "v", 16)
	if okA && okB {
		return a.Equal(b)
	}
	return reflect.DeepEqual(stored, want)
}
