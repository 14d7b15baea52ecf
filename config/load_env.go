package config

import (
	"log/slog"

	"github.com/subosito/gotenv"
)

const DEFAULT_ENV_FILE = ".env"

// LoadEnv populates the process environment from local env files. Values
// already present in the OS environment win over the file.
func LoadEnv(paths ...string) {
	if len(paths) == 0 {
		paths = []string{DEFAULT_ENV_FILE}
	}

	for _, envFile := range paths {
		if err := gotenv.Load(envFile); err != nil {
			slog.Warn("[Config] No env file found, using OS environment",
				slog.String("file", envFile))
		}
	}
}
