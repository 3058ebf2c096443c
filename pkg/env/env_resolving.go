package env

import (
	"os"
	"strconv"
	"strings"
)

type EnvType string

const (
	DEV  = EnvType("dev")
	PROD = EnvType("prod")
	TEST = EnvType("test")
)

func GetEnvType() EnvType {
	envType := EnvType(os.Getenv("env"))
	if envType == DEV {
		return DEV
	}
	if envType == PROD {
		return PROD
	}
	if envType == TEST {
		return TEST
	}
	return DEV
}

func GetEnvOr(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func GetEnvIntOr(key string, defaultValue int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func GetEnvBoolOr(key string, defaultValue bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	return strings.ToLower(value) == "true"
}

// GetEnvListOr splits a comma-separated value, trimming spaces around items.
// Returns a fresh copy of defaultValue when the variable is unset, so callers
// never share backing arrays between separately built configs.
func GetEnvListOr(key string, defaultValue []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		items := make([]string, len(defaultValue))
		copy(items, defaultValue)
		return items
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
