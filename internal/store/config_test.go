package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TASKLINE_FILE", "")

	cfg := LoadConfig()

	assert.Equal(t, filepath.Join(home, ".taskline", "tasks.json"), cfg.File)
	assert.Equal(t, "> ", cfg.Prompt)
	assert.Empty(t, cfg.ExportDir)
}

func TestLoadConfigFromFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TASKLINE_FILE", "")
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".taskline"), 0o755))
	yaml := "file: /srv/tasks/mine.json\nprompt: 'tasks: '\nexport_dir: /srv/tasks/exports\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, ".taskline", "config.yaml"), []byte(yaml), 0o644))

	cfg := LoadConfig()

	assert.Equal(t, "/srv/tasks/mine.json", cfg.File)
	assert.Equal(t, "tasks: ", cfg.Prompt)
	assert.Equal(t, "/srv/tasks/exports", cfg.ExportDir)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".taskline"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".taskline", "config.yaml"), []byte("file: /from/config.json\n"), 0o644))
	t.Setenv("TASKLINE_FILE", "/from/env.json")

	cfg := LoadConfig()

	assert.Equal(t, "/from/env.json", cfg.File)
}

func TestLoadConfigIgnoresBrokenFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TASKLINE_FILE", "")
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".taskline"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".taskline", "config.yaml"), []byte(":::\tnot yaml"), 0o644))

	cfg := LoadConfig()

	assert.Equal(t, filepath.Join(home, ".taskline", "tasks.json"), cfg.File)
	assert.Equal(t, "> ", cfg.Prompt)
}
