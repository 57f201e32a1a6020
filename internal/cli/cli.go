// Package cli turns command lines into store operations and text output.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/amirbrooks/taskline/internal/store"
)

// App wires the store to a terminal session. Output meant for the user goes
// to out; recovered storage failures go through the logger on stderr.
type App struct {
	Store  *store.Store
	Config store.Config
	out    io.Writer
	logger *log.Logger
}

func NewApp(cfg store.Config, out io.Writer, logger *log.Logger) *App {
	if out == nil {
		out = os.Stdout
	}
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "taskline"})
	}
	return &App{
		Store:  store.Open(cfg, logger),
		Config: cfg,
		out:    out,
		logger: logger,
	}
}

// Run executes the given arguments as one command line, or starts the
// interactive session when there are none. Every documented path exits 0;
// problems are reported as messages, not exit codes.
func Run(args []string) int {
	app := NewApp(store.LoadConfig(), os.Stdout, nil)
	if len(args) > 0 {
		app.Execute(strings.Join(args, " "))
		return 0
	}
	app.Interactive(os.Stdin)
	return 0
}

// Execute runs one command line. The returned flag is true when the session
// should end; only exit and its aliases set it. Empty input is a no-op and
// unknown commands keep the session alive.
func (a *App) Execute(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	fields := strings.Fields(line)
	cmd := strings.ToLower(fields[0])
	rest := strings.TrimSpace(strings.TrimPrefix(line, fields[0]))

	switch cmd {
	case "add":
		a.cmdAdd(rest)
	case "done":
		a.cmdDone(rest)
	case "delete":
		a.cmdDelete(rest)
	case "display", "list", "show":
		a.cmdDisplay()
	case "archive":
		a.cmdArchive()
	case "location":
		a.cmdLocation()
	case "export":
		a.cmdExport(rest)
	case "help":
		fmt.Fprint(a.out, helpText)
	case "exit", "quit", "q":
		return true
	default:
		fmt.Fprintf(a.out, "Unknown command %q. Type help for the command list.\n", cmd)
	}
	return false
}

func (a *App) cmdAdd(name string) {
	serial, err := a.Store.Add(name)
	if err != nil {
		if errors.Is(err, store.ErrInvalid) {
			fmt.Fprintln(a.out, "add: task name is required")
		}
		return
	}
	fmt.Fprintf(a.out, "Added task #%d: %s\n", serial, strings.TrimSpace(name))
}

func (a *App) cmdDone(arg string) {
	n, ok := a.parseSerial("done", arg)
	if !ok {
		return
	}
	t, err := a.Store.Complete(n)
	if err != nil {
		if errors.Is(err, store.ErrInvalid) {
			fmt.Fprintf(a.out, "done: no pending task #%d\n", n)
		}
		return
	}
	fmt.Fprintf(a.out, "Completed: %s\n", t.Name)
}

func (a *App) cmdDelete(arg string) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "":
		fmt.Fprintln(a.out, "delete: need a task number, all, or archive")
		return
	case "all":
		count, err := a.Store.HidePending()
		if err != nil {
			return
		}
		fmt.Fprintf(a.out, "Deleted %d pending task(s)\n", count)
		return
	case "archive":
		count, err := a.Store.HideArchived()
		if err != nil {
			return
		}
		fmt.Fprintf(a.out, "Deleted %d archived task(s)\n", count)
		return
	}
	n, ok := a.parseSerial("delete", arg)
	if !ok {
		return
	}
	t, err := a.Store.Hide(n)
	if err != nil {
		if errors.Is(err, store.ErrInvalid) {
			fmt.Fprintf(a.out, "delete: no pending task #%d\n", n)
		}
		return
	}
	fmt.Fprintf(a.out, "Deleted: %s\n", t.Name)
}

func (a *App) cmdDisplay() {
	d := a.Store.Load()
	fmt.Fprint(a.out, renderPending(store.Pending(d)))
}

func (a *App) cmdArchive() {
	d := a.Store.Load()
	fmt.Fprint(a.out, renderArchive(store.Archived(d)))
}

func (a *App) cmdLocation() {
	path, exists := a.Store.Location()
	fmt.Fprint(a.out, renderLocation(path, exists))
}

func (a *App) parseSerial(cmd, arg string) (int, bool) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		fmt.Fprintf(a.out, "%s: task number is required\n", cmd)
		return 0, false
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintf(a.out, "%s: %q is not a task number\n", cmd, arg)
		return 0, false
	}
	return n, true
}
