package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether w is a terminal. Any writer with an Fd method
// (such as *os.File) is checked.
func IsTTY(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// SupportsColor reports whether ANSI colour should be written to w.
// NO_COLOR (any value) and TERM=dumb turn colour off.
func SupportsColor(w io.Writer) bool {
	return colorAllowed(os.LookupEnv) && IsTTY(w)
}

func colorAllowed(lookup func(string) (string, bool)) bool {
	if _, set := lookup("NO_COLOR"); set {
		return false
	}
	termName, _ := lookup("TERM")
	return termName != "dumb"
}
