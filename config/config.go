// Package config handles configuration loading from environment variables
package config

import (
	"log"
	"os"
	"strings"
)

const (
	// RuntimeGo describes the Go runtime of the current process.
	RuntimeGo = "go"

	// RuntimeNetFramework describes a hosted .NET Framework process whose
	// description is supplied by configuration and whose version is read
	// from the Windows registry.
	RuntimeNetFramework = "netfx"
)

// Config holds the detector configuration
type Config struct {
	// Runtime selects the runtime platform (from LAST9_PROCESS_RUNTIME, defaults to "go")
	Runtime string

	// Description is the runtime description reported by the host
	// (from LAST9_PROCESS_RUNTIME_DESCRIPTION). Only used by the netfx runtime.
	Description string
}

// Load reads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		Runtime:     ParseRuntime(getEnvOrDefault("LAST9_PROCESS_RUNTIME", RuntimeGo)),
		Description: os.Getenv("LAST9_PROCESS_RUNTIME_DESCRIPTION"),
	}

	return cfg
}

// ParseRuntime normalizes a runtime name. Empty selects RuntimeGo; unknown
// names log a warning and fall back to RuntimeGo.
func ParseRuntime(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case RuntimeGo, "":
		return RuntimeGo
	case RuntimeNetFramework:
		return RuntimeNetFramework
	default:
		log.Printf("[Last9 Agent] Warning: Unknown process runtime %q, using %s", name, RuntimeGo)
		return RuntimeGo
	}
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
