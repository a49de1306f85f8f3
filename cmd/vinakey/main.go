// vinakey CLI - Vietnamese keystroke transliteration.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/pterm/pterm"
	"github.com/spf13/pflag"

	"vinakey/internal/batch"
	"vinakey/internal/config"
	"vinakey/internal/keymap"
	"vinakey/internal/metrics"
	"vinakey/internal/schema"
	"vinakey/internal/ui"
	"vinakey/pkg/vinakey"
)

func main() {
	// Flags
	method := pflag.StringP("method", "m", config.DefaultMethod(), "Input method: "+config.AvailableMethodsStr())
	style := pflag.StringP("style", "s", config.DefaultStyle(), "Tone placement on oa/oe/uy: modern or classic")
	input := pflag.StringP("input", "i", "", "Read keystrokes from file instead of arguments or stdin")
	outputDir := pflag.StringP("output-dir", "o", config.DefaultOutputDir(), "Output directory for JSON and metrics")
	jsonName := pflag.String("json", "", "Write a JSON document with every conversion to output-dir/NAME")
	bindings := pflag.BoolP("bindings", "b", false, "Print the key bindings of the method")
	quiet := pflag.BoolP("quiet", "q", config.DefaultQuiet(), "Print converted text only")
	verbose := pflag.BoolP("verbose", "v", config.DefaultVerbose(), "Show every conversion")
	writeMetrics := pflag.Bool("metrics", config.DefaultMetrics(), "Write metrics to output directory")

	// Parallel processing flags
	parallel := pflag.BoolP("parallel", "p", config.DefaultParallel(), "Convert lines in parallel")
	workers := pflag.IntP("workers", "w", config.DefaultWorkers(), "Number of parallel workers (0 = auto)")

	pflag.Parse()

	// Auto-detect workers
	if *workers <= 0 {
		*workers = runtime.NumCPU()
	}
	if *workers > config.MaxWorkers {
		*workers = config.MaxWorkers
	}

	term := ui.New(*quiet, *verbose)

	m, err := vinakey.ParseMethod(*method)
	if err != nil {
		term.Error(err.Error())
		os.Exit(2)
	}
	st, err := vinakey.ParseStyle(*style)
	if err != nil {
		term.Error(err.Error())
		os.Exit(2)
	}
	engine, err := vinakey.New(vinakey.Config{Method: m, Enabled: config.DefaultEnabled(), Style: st})
	if err != nil {
		term.Error(err.Error())
		os.Exit(2)
	}

	if *bindings {
		printBindings(term, m)
		if *input == "" && pflag.NArg() == 0 {
			return
		}
	}

	source := "stdin"
	switch {
	case *input != "":
		source = *input
	case pflag.NArg() > 0:
		source = "arguments"
	}

	if !*quiet {
		term.Banner()
		term.Config(m.String(), st.String(), *parallel, *workers, source)
	}

	collector := metrics.NewCollector()
	collector.SetConfig("method", m.String())
	collector.SetConfig("style", st.String())
	collector.SetConfig("parallel", *parallel)
	collector.SetConfig("workers", *workers)

	// Phase 1: Read input
	collector.StartStage("read")
	var spinner *pterm.SpinnerPrinter
	if *input != "" && !*quiet {
		spinner = term.Spinner("Reading " + *input)
	}
	lines, err := readInput(*input, pflag.Args())
	collector.EndStage("read")
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		term.Error(err.Error())
		os.Exit(1)
	}
	collector.IncrementCounter("lines", int64(len(lines)))
	term.Debug(fmt.Sprintf("Read %d lines from %s", len(lines), source))

	// Phase 2: Convert
	collector.StartStage("convert")
	if !*quiet {
		term.Phase(1, 1, "Converting")
	}

	n := 1
	if *parallel {
		n = *workers
	}
	collector.SetGauge("workers", float64(n))

	var progress *pterm.ProgressbarPrinter
	if *input != "" && !*quiet && len(lines) > 1 {
		progress = term.Progress("Lines", len(lines))
	}

	var mu sync.Mutex
	var rows []ui.Conversion
	results := batch.Convert(lines, batch.Config{Workers: n, Method: m.String()}, engine.ProcessWord, func(_ int, r *batch.LineResult) {
		collector.IncrementCounter(metrics.CounterKeystrokes, int64(r.Keystrokes))
		collector.IncrementCounter(metrics.CounterWords, int64(len(r.Words)))
		changed := 0
		for _, w := range r.Words {
			if w.Changed {
				changed++
			}
		}
		collector.IncrementCounter(metrics.CounterWordsChanged, int64(changed))

		mu.Lock()
		defer mu.Unlock()
		if progress != nil {
			progress.Increment()
		}
		if *verbose {
			for _, w := range r.Words {
				rows = append(rows, ui.Conversion{Input: w.Input, Output: w.Output})
			}
		}
	})
	collector.EndStage("convert")
	if progress != nil {
		progress.Stop()
	}

	for _, r := range results {
		fmt.Println(r.Output)
	}
	if *verbose {
		fmt.Println()
		term.Conversions(rows)
	}

	stats := batch.AggregateResults(results)
	if *verbose {
		term.Stats("Conversion", [][]string{
			{"Lines", fmt.Sprintf("%d", stats.Lines)},
			{"Words", fmt.Sprintf("%d", stats.Words)},
			{"Rewritten", fmt.Sprintf("%d", stats.Changed)},
			{"Keystrokes", fmt.Sprintf("%d", stats.Keystrokes)},
		})
	}

	if *jsonName != "" {
		doc := schema.NewDocument(strings.TrimSuffix(*jsonName, ".json"), m.String(), st.String())
		for _, r := range results {
			doc.AddLine(r.Output, r.Words)
		}
		path := filepath.Join(*outputDir, *jsonName)
		if err := doc.Save(path); err != nil {
			term.Error(fmt.Sprintf("Failed to write %s: %v", path, err))
			os.Exit(1)
		}
		term.Success(fmt.Sprintf("Wrote %s (%d words, %d rewritten)", path, doc.Count(), doc.ChangedCount()))
	}

	runMetrics := collector.Finalize()

	if *writeMetrics {
		reporter, err := metrics.NewReporter(*outputDir)
		if err != nil {
			term.Warning(fmt.Sprintf("Failed to write metrics: %v", err))
		} else {
			// Get previous run of the same method for comparison
			previousRun, _ := reporter.LastRun(m.String())

			if err := reporter.Write(runMetrics); err != nil {
				term.Warning(fmt.Sprintf("Failed to write metrics: %v", err))
			} else {
				term.Debug(fmt.Sprintf("Metrics written: %s", runMetrics.RunID))
			}

			if comparison := metrics.CompareRuns(metrics.Entry(runMetrics), previousRun); comparison != nil {
				term.Info(metrics.FormatComparison(comparison))
			}
		}
	}

	if !*quiet {
		term.FinalReport(stats.Words, stats.Changed, stats.Keystrokes,
			collector.StageDuration("read")+collector.StageDuration("convert"))
		term.Done()
	}
}

// readInput returns the lines to convert: the named file, else the
// arguments as one line, else stdin.
func readInput(path string, args []string) ([]string, error) {
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		return batch.ReadLines(f)
	}
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}
	return batch.ReadLines(os.Stdin)
}

// printBindings shows the key table of m, or of every method AUTO tries.
func printBindings(term *ui.UI, m keymap.Method) {
	methods := []keymap.Method{m}
	if m == keymap.Auto {
		methods = keymap.AutoOrder
	}
	for _, mm := range methods {
		if table, ok := keymap.For(mm); ok {
			term.Bindings(table)
		} else {
			term.Info(fmt.Sprintf("%s has no key bindings", mm))
		}
	}
}
