package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiBoldCyan = "\033[1;36m"
	ansiReset    = "\033[0m"
)

// colorEnabled honours --no-color, NO_COLOR (https://no-color.org/) and
// TERM=dumb, and only colours real terminals.
func colorEnabled(w io.Writer, disabled bool) bool {
	if disabled {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (d *demo) section(title string) {
	if d.color {
		fmt.Fprintf(d.out, "\n%s━━━ %s ━━━%s\n", ansiBoldCyan, title, ansiReset)
		return
	}
	fmt.Fprintf(d.out, "\n━━━ %s ━━━\n", title)
}
