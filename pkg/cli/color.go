package cli

import (
	"os"

	"github.com/mattn/go-isatty"
)

// colorEnabled reports whether diagnostics should be colored. Honors
// NO_COLOR and TERM=dumb before consulting the terminal.
func colorEnabled() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}

func paint(code, s string) string {
	if !colorEnabled() {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

func red(s string) string   { return paint("31", s) }
func green(s string) string { return paint("32", s) }
