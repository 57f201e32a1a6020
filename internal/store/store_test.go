package store

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return Open(Config{File: filepath.Join(t.TempDir(), "tasks.json")}, log.New(io.Discard))
}

func TestLoadMissingFileReturnsEmptyDocument(t *testing.T) {
	s := testStore(t)

	d := s.Load()

	require.NotNil(t, d)
	assert.NotNil(t, d.Tasks)
	assert.Empty(t, d.Tasks)
	assert.Equal(t, 1, d.NextID)
}

func TestLoadCorruptFileReturnsEmptyDocument(t *testing.T) {
	s := testStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path), 0o755))
	require.NoError(t, os.WriteFile(s.Path, []byte("not json {{"), 0o644))

	d := s.Load()

	assert.Empty(t, d.Tasks)
	assert.Equal(t, 1, d.NextID)

	// The store stays usable after swallowing the parse failure.
	serial, err := s.Add("recovered")
	require.NoError(t, err)
	assert.Equal(t, 1, serial)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := testStore(t)
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	completed := time.Date(2026, 3, 2, 18, 30, 0, 0, time.UTC)
	hidden := time.Date(2026, 3, 3, 8, 15, 0, 0, time.UTC)
	d := &TaskData{
		Tasks: []Task{
			{ID: 1, Name: "Buy milk", CreatedAt: created},
			{ID: 2, Name: "Pay rent", Completed: true, CreatedAt: created, CompletedAt: &completed},
			{ID: 3, Name: "Old chore", Completed: true, Hidden: true, CreatedAt: created, CompletedAt: &completed, HiddenAt: &hidden},
		},
		NextID: 4,
	}

	require.NoError(t, s.Save(d))
	loaded := s.Load()

	assert.Equal(t, d, loaded)
}

func TestSaveOverwritesPreviousDocument(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Save(&TaskData{Tasks: []Task{{ID: 1, Name: "first", CreatedAt: timeNow()}}, NextID: 2}))
	require.NoError(t, s.Save(&TaskData{Tasks: []Task{}, NextID: 2}))

	d := s.Load()

	assert.Empty(t, d.Tasks)
	assert.Equal(t, 2, d.NextID)
}

func TestLocationReportsExistence(t *testing.T) {
	s := testStore(t)

	path, exists := s.Location()
	assert.Equal(t, s.Path, path)
	assert.False(t, exists)

	require.NoError(t, s.Save(emptyTaskData()))

	_, exists = s.Location()
	assert.True(t, exists)
}

func TestOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s := Open(Config{File: "~/tasks.json"}, log.New(io.Discard))

	assert.Equal(t, filepath.Join(home, "tasks.json"), s.Path)
}
