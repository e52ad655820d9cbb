package docstore

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// AsString reads a string field, formatting numbers.
func AsString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case json.Number:
		return val.String()
	default:
		return ""
	}
}

// AsInt reads an integer field stored as any JSON-ish numeric type or a numeric string.
func AsInt(v any) int {
	switch val := v.(type) {
	case int:
		return val
	case int32:
		return int(val)
	case int64:
		return int(val)
	case float32:
		return floatToInt(float64(val))
	case float64:
		return floatToInt(val)
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return int(i)
		}
		if f, err := val.Float64(); err == nil {
			return floatToInt(f)
		}
		return 0
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return i
		}
		return 0
	default:
		return 0
	}
}

// floatToInt truncates f, zero when it does not fit an int.
func floatToInt(f float64) int {
	if math.IsNaN(f) || f < -float64(math.MaxInt)-1 || f >= float64(math.MaxInt)+1 {
		return 0
	}
	return int(f)
}

func AsBool(v any) bool {
	b, _ := v.(bool)
	return b
}

// AsTime reads an RFC3339 timestamp, zero when missing or invalid.
func AsTime(v any) time.Time {
	switch val := v.(type) {
	case time.Time:
		return val
	case string:
		t, err := time.Parse(time.RFC3339Nano, val)
		if err != nil {
			return time.Time{}
		}
		return t
	default:
		return time.Time{}
	}
}

func AsFloat64(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case float32:
		return float64(val)
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case json.Number:
		f, _ := val.Float64()
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// AsStrings reads a list field, skipping elements that are not strings.
func AsStrings(v any) []string {
	var list []string
	switch val := v.(type) {
	case []string:
		list = append(list, val...)
	case []any:
		for _, el := range val {
			if s, ok := el.(string); ok {
				list = append(list, s)
			}
		}
	}
	return list
}
