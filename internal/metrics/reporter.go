package metrics

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// HistoryEntry is one line of history.jsonl: what a run converted and how
// fast, keyed by the input method it ran under.
type HistoryEntry struct {
	RunID        string    `json:"run_id"`
	Timestamp    time.Time `json:"timestamp"`
	Method       string    `json:"method"`
	Style        string    `json:"style,omitempty"`
	Words        int64     `json:"words"`
	WordsChanged int64     `json:"words_changed"`
	ChangedRatio float64   `json:"changed_ratio"`
	Keystrokes   int64     `json:"keystrokes"`
	DurationMs   int64     `json:"duration_ms"`
	Throughput   float64   `json:"throughput_keys_per_sec"`
}

// Entry condenses a run into its history line.
func Entry(run *RunMetrics) *HistoryEntry {
	e := &HistoryEntry{
		RunID:     run.RunID,
		Timestamp: run.Timestamp,
		Method:    configString(run.Config, "method"),
		Style:     configString(run.Config, "style"),
	}
	if t := run.Totals; t != nil {
		e.Words = t.Words
		e.WordsChanged = t.WordsChanged
		e.Keystrokes = t.Keystrokes
		e.DurationMs = t.DurationMs
		e.Throughput = t.Throughput
		if t.Words > 0 {
			e.ChangedRatio = float64(t.WordsChanged) / float64(t.Words)
		}
	}
	return e
}

func configString(config map[string]interface{}, key string) string {
	if s, ok := config[key].(string); ok {
		return s
	}
	return ""
}

// Reporter writes run metrics under <output>/metrics: the full report of the
// last run in latest.json and one HistoryEntry per run in history.jsonl.
type Reporter struct {
	dir         string
	historyFile string
}

// NewReporter creates the metrics directory under outputDir.
func NewReporter(outputDir string) (*Reporter, error) {
	dir := filepath.Join(outputDir, "metrics")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create metrics dir: %w", err)
	}
	return &Reporter{dir: dir, historyFile: filepath.Join(dir, "history.jsonl")}, nil
}

// Write stores run as latest.json and appends its entry to the history.
func (r *Reporter) Write(run *RunMetrics) error {
	f, err := os.Create(filepath.Join(r.dir, "latest.json"))
	if err != nil {
		return fmt.Errorf("write latest.json: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	err = enc.Encode(run)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write latest.json: %w", err)
	}

	line, err := json.Marshal(Entry(run))
	if err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	h, err := os.OpenFile(r.historyFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	defer h.Close()
	if _, err := h.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

// ReadHistory returns the last limit entries, oldest first. An empty method
// matches every entry. Malformed lines are skipped.
func (r *Reporter) ReadHistory(method string, limit int) ([]*HistoryEntry, error) {
	f, err := os.Open(r.historyFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var entries []*HistoryEntry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var e HistoryEntry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			continue
		}
		if method != "" && e.Method != method {
			continue
		}
		entries = append(entries, &e)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries, nil
}

// LastRun returns the most recent entry recorded under method, or nil.
func (r *Reporter) LastRun(method string) (*HistoryEntry, error) {
	entries, err := r.ReadHistory(method, 1)
	if err != nil || len(entries) == 0 {
		return nil, err
	}
	return entries[0], nil
}

// Comparison sets a run against the previous run of the same method.
type Comparison struct {
	Method           string  `json:"method"`
	CurrentRunID     string  `json:"current_run_id"`
	PreviousRunID    string  `json:"previous_run_id"`
	ThroughputFactor float64 `json:"throughput_factor"`
	KeystrokesDiff   int64   `json:"keystrokes_diff"`
	ChangedRatio     float64 `json:"changed_ratio"`
	PreviousRatio    float64 `json:"previous_changed_ratio"`
}

// CompareRuns compares two entries. It returns nil when either is missing or
// they were recorded under different methods.
func CompareRuns(current, previous *HistoryEntry) *Comparison {
	if current == nil || previous == nil || current.Method != previous.Method {
		return nil
	}

	factor := float64(1)
	if previous.Throughput > 0 {
		factor = current.Throughput / previous.Throughput
	}

	return &Comparison{
		Method:           current.Method,
		CurrentRunID:     current.RunID,
		PreviousRunID:    previous.RunID,
		ThroughputFactor: factor,
		KeystrokesDiff:   current.Keystrokes - previous.Keystrokes,
		ChangedRatio:     current.ChangedRatio,
		PreviousRatio:    previous.ChangedRatio,
	}
}

// FormatComparison returns a one-line summary of c.
func FormatComparison(c *Comparison) string {
	if c == nil {
		return "No previous run to compare"
	}

	return fmt.Sprintf(
		"%s: %.2fx keys/sec of previous run (%+d keys, rewritten %.0f%% -> %.0f%%)",
		c.Method,
		c.ThroughputFactor,
		c.KeystrokesDiff,
		c.PreviousRatio*100,
		c.ChangedRatio*100,
	)
}
