package utils

import (
	"strconv"
	"strings"
)

func ToInt(v any) int {
	switch val := v.(type) {
	case int:
		return val
	case int32:
		return int(val)
	case int64:
		return int(val)
	case float32:
		return int(val)
	case float64:
		return int(val)
	case string:
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
		return 0
	default:
		return 0
	}
}

func ToFloat64(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case float32:
		return float64(val)
	case int:
		return float64(val)
	case int64:
		return float64(val)
	default:
		return 0
	}
}

// ToString renders a decoded JSON value for display. Values with no
// sensible text form render as the empty string.
func ToString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int, int32, int64:
		return strconv.FormatInt(int64(ToInt(val)), 10)
	case float32, float64:
		return strconv.FormatFloat(ToFloat64(val), 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

// Truncate shortens s to at most n runes, appending an ellipsis when cut.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 1 {
		return string(runes[:n])
	}
	return strings.TrimSpace(string(runes[:n-1])) + "…"
}

func Deduplicate(s []string) []string {
	seen := make(map[string]bool)
	result := []string{}
	for _, str := range s {
		if !seen[str] {
			seen[str] = true
			result = append(result, str)
		}
	}
	return result
}
