package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/amirbrooks/taskline/internal/store"
)

const helpText = `taskline — personal task list

Commands:
  add <name>              Add a pending task
  done <n>                Complete pending task number n
  delete <n>              Delete pending task number n (kept in storage, hidden)
  delete all              Delete every pending task
  delete archive          Delete every archived task
  display                 Show pending tasks (aliases: list, show)
  archive                 Show completed tasks
  export [json|ndjson]    Write a snapshot of the full store
  location                Show where tasks are stored
  help                    Show this reference
  exit                    Leave the session (aliases: quit, q)

Task numbers are positions in the current listing and shift after deletes.
`

func renderPending(tasks []*store.Task) string {
	if len(tasks) == 0 {
		return "All caught up. Nothing pending.\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Pending tasks (%d):\n", len(tasks))
	w := tabwriter.NewWriter(&b, 2, 4, 2, ' ', 0)
	for i, t := range tasks {
		fmt.Fprintf(w, "  %d.\t%s\n", i+1, t.Name)
	}
	_ = w.Flush()
	return b.String()
}

func renderArchive(tasks []*store.Task) string {
	if len(tasks) == 0 {
		return "The archive is empty.\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Archived tasks (%d):\n", len(tasks))
	w := tabwriter.NewWriter(&b, 2, 4, 2, ' ', 0)
	for i, t := range tasks {
		done := "-"
		if t.CompletedAt != nil {
			done = t.CompletedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "  %d.\t%s\tdone %s\n", i+1, t.Name, done)
	}
	_ = w.Flush()
	return b.String()
}

func renderLocation(path string, exists bool) string {
	if exists {
		return fmt.Sprintf("Tasks are stored in %s\n", path)
	}
	return fmt.Sprintf("Tasks will be stored in %s (no file yet)\n", path)
}
