package cli

import (
	"bufio"
	"fmt"
	"io"
)

// Interactive prints the command reference and then runs the read-eval
// loop until an exit command or end of input. End of input is normal
// termination, not an error.
func (a *App) Interactive(in io.Reader) {
	fmt.Fprint(a.out, helpText)
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(a.out, a.prompt())
		if !scanner.Scan() {
			fmt.Fprintln(a.out)
			return
		}
		if a.Execute(scanner.Text()) {
			return
		}
	}
}

func (a *App) prompt() string {
	if a.Config.Prompt != "" {
		return a.Config.Prompt
	}
	return "> "
}
