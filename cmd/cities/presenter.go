package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pescuma/cities/lib/consoles"
	"github.com/pescuma/cities/lib/viewmodel"
)

// consolePresenter asks confirmations on the terminal. Editors have no
// visible form here, so showing and hiding them is only logged.
type consolePresenter struct {
	in      *bufio.Reader
	out     io.Writer
	console consoles.Console

	// yes answers every confirmation without asking.
	yes bool
}

func newConsolePresenter(in io.Reader, out io.Writer, console consoles.Console) *consolePresenter {
	return &consolePresenter{
		in:      bufio.NewReader(in),
		out:     out,
		console: console,
	}
}

func (p *consolePresenter) ShowEditor(editor viewmodel.Editor, title string) {
	p.console.Debugf("%v\n", title)
}

func (p *consolePresenter) HideEditor(editor viewmodel.Editor) {
	p.console.Debugf("Closing %v editor\n", editor)
}

func (p *consolePresenter) Alert(message string) {
	p.console.Debugf("Alert: %v\n", message)
}

func (p *consolePresenter) Confirm(message string) bool {
	if p.yes {
		return true
	}

	_, _ = fmt.Fprintf(p.out, "%v [y/N] ", message)

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
