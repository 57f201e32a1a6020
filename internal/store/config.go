package store

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultDirName  = ".taskline"
	defaultFileName = "tasks.json"
	defaultPrompt   = "> "
)

// Config controls where the task document lives and how the session looks.
// Everything has a working default; the config file is optional.
type Config struct {
	File      string `yaml:"file"`
	Prompt    string `yaml:"prompt"`
	ExportDir string `yaml:"export_dir"`
}

// LoadConfig resolves the effective config. Precedence: the TASKLINE_FILE
// environment variable, then ~/.taskline/config.yaml, then built-in
// defaults. A missing or broken config file falls back to defaults; it
// never blocks a session.
func LoadConfig() Config {
	cfg := defaultConfig()
	if b, err := os.ReadFile(configPath()); err == nil {
		var fileCfg Config
		if err := yaml.Unmarshal(b, &fileCfg); err == nil {
			if strings.TrimSpace(fileCfg.File) != "" {
				cfg.File = fileCfg.File
			}
			if fileCfg.Prompt != "" {
				cfg.Prompt = fileCfg.Prompt
			}
			if strings.TrimSpace(fileCfg.ExportDir) != "" {
				cfg.ExportDir = fileCfg.ExportDir
			}
		}
	}
	if env := os.Getenv("TASKLINE_FILE"); env != "" {
		cfg.File = env
	}
	return cfg
}

func defaultConfig() Config {
	return Config{
		File:   filepath.Join(homeDir(), defaultDirName, defaultFileName),
		Prompt: defaultPrompt,
	}
}

func configPath() string {
	return filepath.Join(homeDir(), defaultDirName, "config.yaml")
}

func homeDir() string {
	home, _ := os.UserHomeDir()
	if home == "" {
		return "."
	}
	return home
}
