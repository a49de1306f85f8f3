// Package batch converts many lines of keystrokes concurrently against one
// shared converter.
package batch

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"vinakey/internal/schema"
)

// Config configures parallel processing behavior.
type Config struct {
	Workers int    // Number of parallel workers (0 or 1 = sequential)
	Method  string // Recorded on every conversion
}

// ConvertFunc turns the keystrokes of one word into text.
type ConvertFunc func(keys string) string

// LineResult holds the result for a single line.
type LineResult struct {
	Index      int
	Input      string
	Output     string
	Words      []schema.Conversion
	Keystrokes int
}

// ProgressCallback is called when a line completes processing.
type ProgressCallback func(index int, result *LineResult)

// ReadLines reads r line by line. Trailing carriage returns are dropped.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}
	return lines, nil
}

// Convert runs fn over every line. Results keep the order of lines whatever
// the order in which workers finish.
func Convert(lines []string, config Config, fn ConvertFunc, callback ProgressCallback) []*LineResult {
	results := make([]*LineResult, len(lines))

	if config.Workers <= 1 {
		for i, line := range lines {
			result := ConvertLine(i, line, config.Method, fn)
			results[i] = result
			if callback != nil {
				callback(i, result)
			}
		}
		return results
	}

	type job struct {
		index int
		line  string
	}

	jobs := make(chan job, len(lines))
	resultsChan := make(chan *LineResult, len(lines))

	var wg sync.WaitGroup
	for w := 0; w < config.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				resultsChan <- ConvertLine(j.index, j.line, config.Method, fn)
			}
		}()
	}

	go func() {
		for i, line := range lines {
			jobs <- job{i, line}
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	for r := range resultsChan {
		results[r.Index] = r
		if callback != nil {
			callback(r.Index, r)
		}
	}

	return results
}

// ConvertLine converts each whitespace-separated word of line with fn. The
// whitespace itself is copied unchanged.
func ConvertLine(index int, line, method string, fn ConvertFunc) *LineResult {
	result := &LineResult{Index: index, Input: line}

	var out strings.Builder
	out.Grow(len(line))

	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		keys := line[start:end]
		text := fn(keys)
		out.WriteString(text)
		result.Words = append(result.Words, schema.NewConversion(keys, text, method, index+1))
		result.Keystrokes += utf8.RuneCountInString(keys)
		start = -1
	}

	for i, r := range line {
		if unicode.IsSpace(r) {
			flush(i)
			out.WriteRune(r)
			continue
		}
		if start < 0 {
			start = i
		}
	}
	flush(len(line))

	result.Output = out.String()
	return result
}

// Stats holds aggregate statistics from a conversion.
type Stats struct {
	Lines      int
	Words      int
	Changed    int
	Keystrokes int
}

// AggregateResults computes statistics from line results.
func AggregateResults(results []*LineResult) *Stats {
	stats := &Stats{Lines: len(results)}
	for _, r := range results {
		if r == nil {
			continue
		}
		stats.Words += len(r.Words)
		stats.Keystrokes += r.Keystrokes
		for _, w := range r.Words {
			if w.Changed {
				stats.Changed++
			}
		}
	}
	return stats
}
