// Package secrets resolves credentials from the environment or from mounted files.
package secrets

import (
	"fmt"
	"os"
	"strings"
)

// FileSuffix marks an env var holding a path to the secret rather than the secret
const FileSuffix = "_FILE"

// GetSecret returns the secret named envKey. A non-empty envKey_FILE wins and
// its trimmed contents are returned; otherwise the plain variable, then defaultValue.
func GetSecret(envKey string, defaultValue string) (string, error) {
	if filePath := os.Getenv(envKey + FileSuffix); filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("read secret file %s: %w", filePath, err)
		}
		value := strings.TrimSpace(string(data))
		if value == "" {
			return "", fmt.Errorf("secret file %s is empty", filePath)
		}
		return value, nil
	}

	if value := os.Getenv(envKey); value != "" {
		return value, nil
	}

	return defaultValue, nil
}

// Redact hides everything in a DSN but the part after the last '@', for logging
func Redact(dsn string) string {
	if dsn == "" {
		return ""
	}
	if i := strings.LastIndex(dsn, "@"); i >= 0 {
		return "***" + dsn[i:]
	}
	return "***"
}
