// Package store owns the task records and the single JSON document they
// live in. Every operation is a full read-modify-write of that file.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

var (
	ErrInvalid = errors.New("invalid")
	timeNow    = func() time.Time { return time.Now().UTC() }
)

// Store is a handle on the task document at a resolved path. It keeps no
// state between operations; the file is the only state.
type Store struct {
	Path   string
	logger *log.Logger
}

// Open resolves the configured file path into a store handle. It does not
// create the file; the first Save does.
func Open(cfg Config, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{Path: expandHome(cfg.File), logger: logger}
}

// Load reads the task document. An absent file yields an empty document;
// an unreadable or unparsable one is reported once and also yields an
// empty document. Load never fails the caller.
func (s *Store) Load() *TaskData {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("could not read task file, starting empty", "path", s.Path, "err", err)
		}
		return emptyTaskData()
	}
	var d TaskData
	if err := json.Unmarshal(b, &d); err != nil {
		s.logger.Warn("task file is not valid JSON, starting empty", "path", s.Path, "err", err)
		return emptyTaskData()
	}
	if d.Tasks == nil {
		d.Tasks = []Task{}
	}
	if d.NextID < 1 {
		d.NextID = 1
	}
	return &d
}

func emptyTaskData() *TaskData {
	return &TaskData{Tasks: []Task{}, NextID: 1}
}

// Save overwrites the document with a pretty-printed serialization. A
// failed write is reported and returned, never retried; the caller's
// in-memory changes are simply lost on the next Load.
func (s *Store) Save(d *TaskData) error {
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		s.logger.Error("could not encode task file", "err", err)
		return err
	}
	if err := atomicWriteFile(s.Path, append(b, '\n'), 0o644); err != nil {
		s.logger.Error("could not write task file", "path", s.Path, "err", err)
		return err
	}
	return nil
}

// Location reports the resolved file path and whether the file exists yet.
func (s *Store) Location() (string, bool) {
	_, err := os.Stat(s.Path)
	return s.Path, err == nil
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~"+string(os.PathSeparator)) || path == "~" {
		home, _ := os.UserHomeDir()
		if home != "" {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

func atomicWriteFile(path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp := filepath.Join(dir, fmt.Sprintf(".tmp-%d", timeNow().UnixNano()))
	if err := os.WriteFile(tmp, data, perm); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	// Rename is atomic on same filesystem.
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
