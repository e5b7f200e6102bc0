package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

func stdoutIsTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// paint colorizes value for terminal output and leaves it untouched when
// stdout is redirected.
func paint(color text.Color, value string) string {
	if !stdoutIsTTY() {
		return value
	}
	return color.Sprint(value)
}

func formatRating(rating float64) string {
	return fmt.Sprintf("%.1f", rating)
}
