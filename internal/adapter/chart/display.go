package chart

import (
	"bufio"
	"fmt"
	"io"

	"github.com/cli/browser"
)

// Display shows a rendered chart and returns once the operator dismisses it
type Display interface {
	Show(path string) error
}

// ViewerDisplay opens the chart with the system's default viewer and blocks
// until the operator presses Enter
type ViewerDisplay struct {
	open   func(path string) error
	in     *bufio.Reader
	prompt io.Writer
}

// NewViewerDisplay creates a display reading the dismissal from in. The same
// reader must be reused for any later console input so no buffered line is lost.
func NewViewerDisplay(in *bufio.Reader, prompt io.Writer) *ViewerDisplay {
	return &ViewerDisplay{
		open:   browser.OpenFile,
		in:     in,
		prompt: prompt,
	}
}

// Show opens the chart and waits for Enter
func (d *ViewerDisplay) Show(path string) error {
	if err := d.open(path); err != nil {
		return fmt.Errorf("failed to open chart viewer: %w", err)
	}

	fmt.Fprint(d.prompt, "Close the chart window and press Enter to continue...")
	if _, err := d.in.ReadString('\n'); err != nil {
		return fmt.Errorf("failed to wait for chart dismissal: %w", err)
	}
	return nil
}
