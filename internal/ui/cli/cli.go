// Package cli renders the results of the lava programs on the terminal.
package cli

import (
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"io"
	"os"
	"regexp"
	"strings"
	"time"
)

var ansiFilter = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// displayWidth of s removes its color/control sequences and returns the length of what is left.
func displayWidth(s string) int {
	return len(ansiFilter.ReplaceAllString(s, ""))
}

// padLeft right-aligns s in a column of the given width.
func padLeft(s string, width int) string {
	if w := displayWidth(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}

// padRight left-aligns s in a column of the given width.
func padRight(s string, width int) string {
	if w := displayWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// UI prints results to a writer, in color if it is a terminal.
type UI struct {
	out   io.Writer
	color bool
}

// New creates a UI writing to out. Colors are enabled if out is a terminal.
func New(out io.Writer) *UI {
	ui := &UI{out: out}
	if f, ok := out.(*os.File); ok {
		ui.color = term.IsTerminal(int(f.Fd()))
	}
	return ui
}

// NewPlain creates a UI writing to out, without colors.
func NewPlain(out io.Writer) *UI {
	return &UI{out: out}
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	fastestStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	slowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	errorStyle   = lipgloss.NewStyle().
			Background(lipgloss.Color("1")).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1)
)

func (ui *UI) style(style lipgloss.Style, s string) string {
	if !ui.color {
		return s
	}
	return style.Render(s)
}

// Result of benchmarking one backend.
type Result struct {
	Backend    string
	Area       int
	Iterations int
	Total      time.Duration
}

// PerRun returns the average time of one iteration.
func (r Result) PerRun() time.Duration {
	if r.Iterations == 0 {
		return 0
	}
	return r.Total / time.Duration(r.Iterations)
}

// PrintResults prints a table with one row per backend, with the time relative to the fastest.
func (ui *UI) PrintResults(results []Result) {
	if len(results) == 0 {
		return
	}
	fastest := results[0].PerRun()
	for _, r := range results[1:] {
		fastest = min(fastest, r.PerRun())
	}

	header := []string{"backend", "area", "runs", "total", "per run", "relative"}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		relative := 1.0
		if fastest > 0 {
			relative = float64(r.PerRun()) / float64(fastest)
		}
		relativeStr := fmt.Sprintf("%.2fx", relative)
		switch {
		case r.PerRun() == fastest:
			relativeStr = ui.style(fastestStyle, relativeStr)
		case relative >= 2:
			relativeStr = ui.style(slowStyle, relativeStr)
		}
		rows = append(rows, []string{
			r.Backend,
			fmt.Sprintf("%d", r.Area),
			fmt.Sprintf("%d", r.Iterations),
			r.Total.Round(time.Microsecond).String(),
			r.PerRun().String(),
			relativeStr,
		})
	}

	widths := make([]int, len(header))
	for ii, h := range header {
		widths[ii] = len(h)
	}
	for _, row := range rows {
		for ii, cell := range row {
			widths[ii] = max(widths[ii], displayWidth(cell))
		}
	}

	cells := make([]string, len(header))
	for ii, h := range header {
		cells[ii] = ui.style(headerStyle, padRight(h, widths[ii]))
	}
	_, _ = fmt.Fprintln(ui.out, strings.Join(cells, "  "))
	for _, row := range rows {
		for ii, cell := range row {
			if ii == 0 {
				// Backend name is left-aligned, numbers right-aligned.
				cells[ii] = padRight(cell, widths[ii])
			} else {
				cells[ii] = padLeft(cell, widths[ii])
			}
		}
		_, _ = fmt.Fprintln(ui.out, strings.Join(cells, "  "))
	}
}

// PrintMismatch reports backends that disagree on the surface area.
func (ui *UI) PrintMismatch(backends []string, areas []int) {
	_, _ = fmt.Fprintln(ui.out, ui.style(errorStyle, "*** Backends disagree on the surface area! ***"))
	for ii, backend := range backends {
		_, _ = fmt.Fprintf(ui.out, "  %s: %d\n", backend, areas[ii])
	}
}
