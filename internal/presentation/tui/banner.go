package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the nfa banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	lines := []struct {
		text, color string
	}{
		{"  _ __  / _| __ _ ", "#38bdf8"},
		{" | '_ \\| |_ / _` |", "#22d3ee"},
		{" | | | |  _| (_| |", "#2dd4bf"},
		{" |_| |_|_|  \\__,_|", "#34d399"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}

// Success formats msg as a green status line.
func Success(msg string) string {
	p := termenv.ColorProfile()
	return termenv.String("✔ " + msg).Foreground(p.Color("#22c55e")).String()
}

// Warning formats msg as a yellow status line.
func Warning(msg string) string {
	p := termenv.ColorProfile()
	return termenv.String("! " + msg).Foreground(p.Color("#eab308")).String()
}
