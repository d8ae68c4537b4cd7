package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

var bannerLines = []string{
	"     _                                     _",
	"  __| | _____   _____ ___  _ __  ___  ___ | | ___",
	" / _` |/ _ \\ \\ / / __/ _ \\| '_ \\/ __|/ _ \\| |/ _ \\",
	"| (_| |  __/\\ V / (_| (_) | | | \\__ \\ (_) | |  __/",
	" \\__,_|\\___| \\_/ \\___\\___/|_| |_|___/\\___/|_|\\___|",
}

// Gradient endpoints (Cyan to Indigo).
var (
	bannerFrom, _ = colorful.Hex("#22d3ee")
	bannerTo, _   = colorful.Hex("#818cf8")
)

// PrintBanner writes the ASCII art banner and version to w.
// Colors follow the terminal profile of w, so redirected output stays plain.
func PrintBanner(w io.Writer, version string) {
	p := termenv.NewOutput(w).Profile
	steps := len(bannerLines) - 1

	fmt.Fprintln(w)
	for i, line := range bannerLines {
		c := bannerFrom.BlendLab(bannerTo, float64(i)/float64(steps)).Clamped()
		fmt.Fprintln(w, p.String(line).Foreground(p.Color(c.Hex())))
	}
	if v := strings.TrimSpace(version); v != "" {
		fmt.Fprintln(w, p.String("  v"+v).Faint())
	}
	fmt.Fprintln(w)
}
