package cli

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/amirbrooks/taskline/internal/store"
)

type randReader struct{}

func (randReader) Read(p []byte) (int, error) { return rand.Read(p) }

// cmdExport writes the raw document, hidden records included, to a
// uniquely named file in the export directory.
func (a *App) cmdExport(arg string) {
	format := strings.ToLower(strings.TrimSpace(arg))
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "ndjson" {
		fmt.Fprintf(a.out, "export: unknown format %q (use json or ndjson)\n", format)
		return
	}
	d := a.Store.Load()
	data, err := encodeExport(d, format)
	if err != nil {
		a.logger.Error("could not encode export", "err", err)
		return
	}
	path, err := a.writeExportFile(format, data)
	if err != nil {
		a.logger.Error("could not write export", "err", err)
		return
	}
	fmt.Fprintf(a.out, "Wrote %s export to %s\n", format, path)
}

func encodeExport(d *store.TaskData, format string) ([]byte, error) {
	if format == "json" {
		b, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	}
	// NDJSON: one task per line, then a meta line carrying the counter.
	var b strings.Builder
	for _, t := range d.Tasks {
		line, err := json.Marshal(t)
		if err != nil {
			return nil, err
		}
		b.Write(line)
		b.WriteByte('\n')
	}
	meta, err := json.Marshal(map[string]int{"nextId": d.NextID})
	if err != nil {
		return nil, err
	}
	b.Write(meta)
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

func (a *App) exportDir() string {
	if strings.TrimSpace(a.Config.ExportDir) != "" {
		return a.Config.ExportDir
	}
	return filepath.Join(filepath.Dir(a.Store.Path), "taskline-exports")
}

func (a *App) writeExportFile(ext string, data []byte) (string, error) {
	dir := a.exportDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("tasks-%s.%s", newULID(), ext))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func newULID() string {
	t := ulid.Timestamp(time.Now().UTC())
	id, err := ulid.New(t, ulid.Monotonic(randReader{}, 0))
	if err != nil {
		// fallback
		return fmt.Sprintf("%d", time.Now().UTC().UnixNano())
	}
	return strings.ToLower(id.String())
}
