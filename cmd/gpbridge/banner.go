package main

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// defaultWidthFactor sets the banner width as a fraction of the terminal.
const defaultWidthFactor = 0.33

// PrintHeader prints msg inside a box sized to the terminal. When the
// terminal size is unavailable the message prints plain.
func PrintHeader(msg string) {
	cols, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols <= 0 {
		fmt.Println(msg)
		return
	}

	width := int(defaultWidthFactor * float64(cols))
	fmt.Print("\n\n")
	fmt.Println(renderBox(msg, width))
}

// renderBox centers each line of msg in a box of the given inner width.
// Lines longer than the box widen it.
func renderBox(msg string, width int) string {
	lines := strings.Split(msg, "\n")
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}

	var b strings.Builder
	b.WriteString("╔" + strings.Repeat("═", width) + "╗\n")
	for _, line := range lines {
		pad := width - len(line)
		left := pad / 2
		b.WriteString("║" + strings.Repeat(" ", left) + line + strings.Repeat(" ", pad-left) + "║\n")
	}
	b.WriteString("╚" + strings.Repeat("═", width) + "╝")
	return b.String()
}
