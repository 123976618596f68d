package config

import (
	"fmt"
	"path/filepath"

	"github.com/subosito/gotenv"
)

const DEFAULT_ENV_DIR = "config/envs"

// EnvFile is the dotenv file for env inside dir, e.g. config/envs/.env.dev.
func EnvFile(dir, env string) string {
	if dir == "" {
		dir = DEFAULT_ENV_DIR
	}
	return filepath.Join(dir, ".env."+env)
}

// LoadEnv copies the variables in path into the process environment.
// Variables that are already set keep their value. A missing file comes
// back as an error wrapping fs.ErrNotExist; the caller decides whether
// that matters.
func LoadEnv(path string) error {
	if err := gotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}
