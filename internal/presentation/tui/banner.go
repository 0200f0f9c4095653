package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes a colored banner to w.
// Colors degrade to the terminal's profile, and to plain text off a terminal.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	p := out.Profile
	lines := []struct {
		text  string
		color string
	}{
		{" _      _____ _____ _______ ", "#818cf8"},
		{"| |    |_   _|_   _|___ /  ", "#a78bfa"},
		{"| |      | |   | |    / /   ", "#c084fc"},
		{"| |___   | |   | |   / /__  ", "#e879f9"},
		{"|_____|  |_|   |_|  /_____| latextree", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
