package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cristianoliveira/rolodex/internal/colors"
)

// rule normalizes one key's value. ok is false when the value is rejected,
// in which case the key falls back to its default.
type rule struct {
	expect    string
	normalize func(value string) (normalized string, ok bool)
}

// rules lists every validated key. Keys not listed are kept verbatim.
var rules = map[string]rule{
	"storage_backend":   oneOf("json", "sqlite"),
	"list_format":       oneOf("table", "simple", "json"),
	"logging_level":     oneOf("debug", "info", "warn", "error"),
	"logging_max_files": positiveInt(),
	"logging_enabled":   boolean(),
	"debug":             boolean(),
	"quiet":             boolean(),
}

func oneOf(values ...string) rule {
	return rule{
		expect: "one of " + strings.Join(values, ", "),
		normalize: func(value string) (string, bool) {
			v := strings.ToLower(strings.TrimSpace(value))
			for _, allowed := range values {
				if v == allowed {
					return v, true
				}
			}
			return "", false
		},
	}
}

func positiveInt() rule {
	return rule{
		expect: "a positive integer",
		normalize: func(value string) (string, bool) {
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil || n <= 0 {
				return "", false
			}
			return strconv.Itoa(n), true
		},
	}
}

func boolean() rule {
	return rule{
		expect: "a boolean (1, true, yes, on, 0, false, no, off)",
		normalize: func(value string) (string, bool) {
			switch strings.ToLower(strings.TrimSpace(value)) {
			case "1", "true", "yes", "on":
				return "true", true
			case "0", "false", "no", "off":
				return "false", true
			}
			return "", false
		},
	}
}

// normalize applies the key's rule. Empty values select the default silently;
// rejected values select it with a warning.
func normalize(key, value, defaultValue string) string {
	r, ok := rules[key]
	if !ok {
		return value
	}
	if value == "" {
		return defaultValue
	}
	if v, ok := r.normalize(value); ok {
		return v
	}
	colors.Warning(fmt.Sprintf("invalid %s %q: expected %s; using %q", key, value, r.expect, defaultValue))
	return defaultValue
}
