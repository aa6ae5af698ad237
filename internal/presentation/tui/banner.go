package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the dentsim banner and version to w. Colours follow the
// writer's detected profile, so redirected output stays plain.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text, color string
	}{
		{"      _            _       _           ", "#5eead4"},
		{"   __| | ___ _ __ | |_ ___(_)_ __ ___  ", "#2dd4bf"},
		{"  / _` |/ _ \\ '_ \\| __/ __| | '_ ` _ \\ ", "#14b8a6"},
		{" | (_| |  __/ | | | |_\\__ \\ | | | | | |", "#0d9488"},
		{"  \\__,_|\\___|_| |_|\\__|___/_|_| |_| |_|", "#0f766e"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w, out.String("  dental front-office simulator "+version).Faint())
	fmt.Fprintln(w)
}
