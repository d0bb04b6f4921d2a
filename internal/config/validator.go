package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// knownEnvVars lists every variable the application reads. Used to flag
// typos like TICK_INTERVAL instead of TICK_INTERVAL_MS.
var knownEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"PORT",
	"LOG_LEVEL",
	"LOG_FORMAT",
	"ENVIRONMENT",
	"LOG_DIR",
	"DB_PATH",
	"TICK_INTERVAL_MS",
	"RNG_SEED",
}

// ValidateEnv checks the schema version (when present) and the syntax of
// numeric variables. All variables have defaults, so nothing is required;
// a malformed value is still an error worth failing fast on.
func ValidateEnv() error {
	if v := os.Getenv("ENV_SCHEMA_VERSION"); v != "" && v != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated",
			ExpectedEnvSchemaVersion, v)
	}

	var bad []string
	for _, key := range []string{"PORT", "TICK_INTERVAL_MS", "RNG_SEED"} {
		if raw := os.Getenv(key); raw != "" {
			if _, err := strconv.Atoi(raw); err != nil {
				bad = append(bad, fmt.Sprintf("%s=%q", key, raw))
			}
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("non-numeric environment values: %s", strings.Join(bad, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and additionally reports
// non-fatal oddities, like IDLEFARM_-prefixed variables that match no
// known setting.
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(knownEnvVars))
	for _, k := range knownEnvVars {
		known[k] = true
	}

	var warnings []string
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, "IDLEFARM_") && !known[strings.TrimPrefix(name, "IDLEFARM_")] {
			warnings = append(warnings, fmt.Sprintf("unrecognized variable %s - check for typos", name))
		}
	}
	if os.Getenv("ENV_SCHEMA_VERSION") == "" {
		warnings = append(warnings, "ENV_SCHEMA_VERSION is not set - defaults assumed")
	}
	return warnings, nil
}
