// Package ui provides terminal UI components using pterm.
package ui

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"

	"vinakey/internal/keymap"
)

// Theme colors for consistent styling
var (
	ColorPrimary   = pterm.FgCyan
	ColorSecondary = pterm.FgLightBlue
	ColorSuccess   = pterm.FgGreen
	ColorWarning   = pterm.FgYellow
	ColorError     = pterm.FgRed
	ColorMuted     = pterm.FgGray
)

// UI wraps pterm components for vinakey.
type UI struct {
	quiet   bool
	verbose bool
}

// New creates a new UI instance.
func New(quiet, verbose bool) *UI {
	if quiet {
		pterm.DisableOutput()
	}
	if verbose {
		pterm.EnableDebugMessages()
	}
	return &UI{quiet: quiet, verbose: verbose}
}

// Banner prints the application banner.
func (u *UI) Banner() {
	pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("vina", pterm.NewStyle(ColorPrimary)),
		pterm.NewLettersFromStringWithStyle("key", pterm.NewStyle(ColorSecondary)),
	).Render()

	pterm.DefaultCenter.Println(
		ColorMuted.Sprint("Vietnamese keystroke transliteration"),
	)
	fmt.Println()
}

// Config prints the configuration summary.
func (u *UI) Config(method, style string, parallel bool, workers int, source string) {
	pterm.DefaultSection.Println("Configuration")

	mode := "sequential"
	if parallel {
		mode = fmt.Sprintf("parallel (%d workers)", workers)
	}

	data := [][]string{
		{"Method", method},
		{"Tone style", style},
		{"Processing", mode},
		{"Input", source},
	}

	pterm.DefaultTable.WithData(data).Render()
	fmt.Println()
}

// Phase prints a phase header.
func (u *UI) Phase(number int, total int, name string) {
	pterm.DefaultSection.WithLevel(2).Println(
		fmt.Sprintf("[%d/%d] %s", number, total, name),
	)
}

// Spinner creates a spinner for long operations.
func (u *UI) Spinner(message string) *pterm.SpinnerPrinter {
	spinner, _ := pterm.DefaultSpinner.
		WithRemoveWhenDone(true).
		Start(message)
	return spinner
}

// Progress creates a progress bar.
func (u *UI) Progress(title string, total int) *pterm.ProgressbarPrinter {
	pb, _ := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle(title).
		WithShowElapsedTime(true).
		WithShowCount(true).
		Start()
	return pb
}

// Conversion is one row of the conversion table.
type Conversion struct {
	Input  string
	Output string
}

// Conversions prints keystroke sequences next to the text they produced.
// Unchanged words are shown muted.
func (u *UI) Conversions(rows []Conversion) {
	if len(rows) == 0 {
		return
	}

	data := pterm.TableData{{"Keys", "Text"}}
	for _, r := range rows {
		out := ColorSuccess.Sprint(r.Output)
		if r.Output == r.Input {
			out = ColorMuted.Sprint(r.Output)
		}
		data = append(data, []string{r.Input, out})
	}

	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	fmt.Println()
}

// Bindings prints the key table of a method.
func (u *UI) Bindings(table *keymap.Table) {
	pterm.DefaultSection.WithLevel(2).Println(
		fmt.Sprintf("Key bindings: %s", table.Method()),
	)

	data := pterm.TableData{{"Key", "Action"}}
	for _, b := range table.Bindings() {
		data = append(data, []string{
			ColorPrimary.Sprintf("%c", b.Key),
			b.Action.Describe(),
		})
	}

	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	fmt.Println()
}

// Stats prints conversion statistics in a table.
func (u *UI) Stats(title string, stats [][]string) {
	pterm.DefaultSection.WithLevel(2).Println(title)
	pterm.DefaultTable.WithData(stats).Render()
	fmt.Println()
}

// FinalReport prints the final summary report.
func (u *UI) FinalReport(words, changed, keystrokes int, duration time.Duration) {
	pterm.DefaultSection.Println("Summary")

	throughput := float64(0)
	if duration > 0 {
		throughput = float64(keystrokes) / duration.Seconds()
	}

	panel := pterm.DefaultBox.WithTitle("Results").Sprint(
		fmt.Sprintf(
			"  Words:          %s\n"+
				"  Rewritten:      %s\n"+
				"  Keystrokes:     %s\n"+
				"  Duration:       %s\n"+
				"  Throughput:     %s keys/sec",
			pterm.FgGreen.Sprintf("%d", words),
			pterm.FgCyan.Sprintf("%d", changed),
			pterm.FgCyan.Sprintf("%d", keystrokes),
			pterm.FgYellow.Sprint(duration.Round(time.Millisecond)),
			pterm.FgMagenta.Sprintf("%.0f", throughput),
		),
	)
	fmt.Println(panel)
}

// Success prints a success message.
func (u *UI) Success(message string) {
	pterm.Success.Println(message)
}

// Error prints an error message.
func (u *UI) Error(message string) {
	pterm.Error.Println(message)
}

// Warning prints a warning message.
func (u *UI) Warning(message string) {
	pterm.Warning.Println(message)
}

// Info prints an info message.
func (u *UI) Info(message string) {
	pterm.Info.Println(message)
}

// Debug prints a debug message (only in verbose mode).
func (u *UI) Debug(message string) {
	if u.verbose {
		pterm.Debug.Println(message)
	}
}

// Done prints the completion message.
func (u *UI) Done() {
	fmt.Println()
	pterm.DefaultCenter.Println(
		ColorSuccess.Sprint("✓ Done!"),
	)
}
