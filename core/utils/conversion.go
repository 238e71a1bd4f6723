package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToInt converts loosely typed meta values to int. Decimal strings are truncated.
func ToInt(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case uint:
		return int(v)
	case uint64:
		return int(v)
	case uint32:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case nil:
		return 0
	default:
		return int(ToFloat(v))
	}
}

// ToFloat converts loosely typed meta values to float64. Unparseable input is zero.
func ToFloat(val any) float64 {
	switch v := val.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case nil:
		return 0
	default:
		f, err := strconv.ParseFloat(strings.TrimSpace(ToString(v)), 64)
		if err != nil {
			return 0
		}
		return f
	}
}

// ToString converts various types to string.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToBool converts various types to bool.
// Numbers are true when non-zero; strings accept 1, true, yes and on.
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case string, []byte:
		switch strings.ToLower(strings.TrimSpace(ToString(v))) {
		case "1", "true", "yes", "on":
			return true
		}
		return false
	case nil:
		return false
	default:
		return ToFloat(v) != 0
	}
}

// ToStrings splits a legacy list value. Slices are stringified element-wise,
// strings are split on commas and blank entries are dropped.
func ToStrings(val any) []string {
	var parts []string
	switch v := val.(type) {
	case []string:
		parts = v
	case []any:
		for _, item := range v {
			parts = append(parts, ToString(item))
		}
	case nil:
		return nil
	default:
		parts = strings.Split(ToString(v), ",")
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
