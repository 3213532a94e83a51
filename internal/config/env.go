package config

import (
	"bufio"
	"os"
	"strings"
)

// Environment overrides applied after Load, so a .env file or shell export can
// point a session at a different model/media without touching the settings file.
const (
	envModel = "DOMEVIEW_MODEL"
	envMedia = "DOMEVIEW_MEDIA"
)

// LoadEnv reads a .env-style file (KEY=VALUE lines, # comments) into the process
// environment, then applies any DOMEVIEW_* overrides to s. A missing file is not
// an error.
func LoadEnv(path string, s *Settings) error {
	if err := readEnvFile(path); err != nil {
		return err
	}
	ApplyEnv(s)
	return nil
}

// ApplyEnv overrides s from the current process environment.
func ApplyEnv(s *Settings) {
	if v := os.Getenv(envModel); v != "" {
		s.ModelPath = v
	}
	if v := os.Getenv(envMedia); v != "" {
		s.MediaPath = v
	}
}

func readEnvFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		i := strings.Index(line, "=")
		if i <= 0 {
			continue
		}
		key := strings.TrimSpace(line[:i])
		value := strings.TrimSpace(line[i+1:])
		if key == "" {
			continue
		}
		if len(value) >= 2 && (value[0] == '"' && value[len(value)-1] == '"' || value[0] == '\'' && value[len(value)-1] == '\'') {
			value = value[1 : len(value)-1]
		}
		_ = os.Setenv(key, value)
	}
	return scanner.Err()
}
