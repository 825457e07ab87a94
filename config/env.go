package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvConfigPath = "ANNOTATOR_CONFIG"
	EnvFolder     = "ANNOTATOR_FOLDER"
)

// LoadDotEnv loads variables from the given .env files (".env" when none are
// given) without overriding variables already set. A missing file is not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// Path returns the config file path, honouring ANNOTATOR_CONFIG.
func Path() string {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p
	}
	return DefaultPath
}

// ApplyEnv overrides fields from the environment.
func (c *Config) ApplyEnv() {
	if c == nil {
		return
	}
	if dir := strings.TrimSpace(os.Getenv(EnvFolder)); dir != "" {
		c.Folder = dir
	}
}
