// Command kedit is a small raw-terminal text editor.
package main

import (
	"os"

	"github.com/cmoss/kedit/editor"
)

func main() {
	args := os.Args[1:]

	e := editor.New()
	if err := e.EnableRawMode(); err != nil {
		e.Die("enabling raw mode: %v", err)
	}
	defer e.RestoreTerminal()

	if err := e.Init(); err != nil {
		e.Die("%v", err)
	}

	if len(args) >= 1 {
		if err := e.Open(args[0]); err != nil {
			e.Die("%v", err)
		}
	}

	e.SetStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find | Ctrl-H = help")

	e.Run()
}
