package config

import (
	"bufio"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Loader resolves settings from the process environment first and falls back
// to values read from a local .env file. Absent keys resolve to "".
type Loader struct {
	dotenv map[string]string
}

// Load reads the given dotfile (usually ".env"). A missing or unreadable
// file is not fatal; the loader then answers from the environment only.
func Load(path string) *Loader {
	return &Loader{dotenv: readDotFile(path)}
}

func (l *Loader) Get(key string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		value = l.dotenv[key]
	}
	return strings.TrimSpace(value)
}

func (l *Loader) GetOrDefault(key, fallback string) string {
	value := l.Get(key)
	if value == "" {
		return fallback
	}
	return value
}

// FirstNonBlank resolves each key in order and returns the first non-blank
// value, or "" when none resolve. Used for prefixed setting variants.
func (l *Loader) FirstNonBlank(keys ...string) string {
	for _, key := range keys {
		if value := l.Get(key); value != "" {
			return value
		}
	}
	return ""
}

// Missing returns the subset of keys that resolve to blank.
func (l *Loader) Missing(keys ...string) []string {
	var missing []string
	for _, key := range keys {
		if l.Get(key) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

func readDotFile(path string) map[string]string {
	values := make(map[string]string)

	file, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			zap.L().Warn("unable to read env file", zap.String("path", path), zap.Error(err))
		}
		return values
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		sep := strings.Index(line, "=")
		if sep <= 0 {
			continue
		}

		key := strings.TrimSpace(line[:sep])
		value := strings.TrimSpace(line[sep+1:])
		if (strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) && len(value) >= 2) ||
			(strings.HasPrefix(value, "'") && strings.HasSuffix(value, "'") && len(value) >= 2) {
			value = value[1 : len(value)-1]
		}

		// First occurrence wins; later duplicates are ignored.
		if _, seen := values[key]; key != "" && !seen {
			values[key] = value
		}
	}
	if err := scanner.Err(); err != nil {
		zap.L().Warn("unable to read env file", zap.String("path", path), zap.Error(err))
	}

	return values
}
