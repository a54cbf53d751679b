package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/schematools/merger"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Walk tool defaults.
	WalkLimit       int
	WalkDetailLimit int
	MaxLimit        int

	// Merge tool defaults.
	MergeStrategy string
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from SCHEMATOOLS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		WalkLimit:       envInt("SCHEMATOOLS_WALK_LIMIT", 100),
		WalkDetailLimit: envInt("SCHEMATOOLS_WALK_DETAIL_LIMIT", 25),
		MaxLimit:        envInt("SCHEMATOOLS_MAX_LIMIT", 1000),
		MergeStrategy:   envStrategy("SCHEMATOOLS_MERGE_STRATEGY"),
	}
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envStrategy(key string) string {
	v := os.Getenv(key)
	if v == "" {
		return ""
	}
	if !merger.IsValidStrategy(v) {
		slog.Warn("invalid strategy env var, ignoring", "key", key, "value", v) //nolint:gosec // G706: values are structured log fields, not format strings
		return ""
	}
	return v
}
