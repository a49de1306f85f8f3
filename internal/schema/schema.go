// Package schema defines the records written by vinakey conversions.
package schema

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Conversion is one keystroke sequence and the text it produced.
type Conversion struct {
	Input   string `json:"input"`
	Output  string `json:"output"`
	Method  string `json:"method"`
	Line    int    `json:"line"`
	Changed bool   `json:"changed"`
}

// NewConversion builds a Conversion, marking it changed when the output
// differs from the input.
func NewConversion(input, output, method string, line int) Conversion {
	return Conversion{
		Input:   input,
		Output:  output,
		Method:  method,
		Line:    line,
		Changed: input != output,
	}
}

// Document is the result of converting a whole input.
type Document struct {
	Name        string       `json:"name"`
	Method      string       `json:"method"`
	Style       string       `json:"style"`
	GeneratedAt string       `json:"generated_at"`
	Lines       []string     `json:"-"`
	Conversions []Conversion `json:"-"`
}

// NewDocument creates an empty Document.
func NewDocument(name, method, style string) *Document {
	return &Document{
		Name:        name,
		Method:      method,
		Style:       style,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// AddLine records a converted line together with its word conversions.
func (d *Document) AddLine(output string, words []Conversion) {
	d.Lines = append(d.Lines, output)
	d.Conversions = append(d.Conversions, words...)
}

// Count returns the number of word conversions.
func (d *Document) Count() int {
	return len(d.Conversions)
}

// ChangedCount returns the number of words the method rewrote.
func (d *Document) ChangedCount() int {
	n := 0
	for _, c := range d.Conversions {
		if c.Changed {
			n++
		}
	}
	return n
}

// Vocabulary returns the distinct changed outputs, sorted.
func (d *Document) Vocabulary() []string {
	seen := make(map[string]bool)
	for _, c := range d.Conversions {
		if c.Changed {
			seen[c.Output] = true
		}
	}
	words := make([]string, 0, len(seen))
	for w := range seen {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Text returns the converted lines joined by newlines.
func (d *Document) Text() string {
	n := 0
	for _, l := range d.Lines {
		n += len(l) + 1
	}
	b := make([]byte, 0, n)
	for i, l := range d.Lines {
		if i > 0 {
			b = append(b, '\n')
		}
		b = append(b, l...)
	}
	return string(b)
}

// MarshalJSON implements custom JSON marshaling.
func (d *Document) MarshalJSON() ([]byte, error) {
	conversions := d.Conversions
	if conversions == nil {
		conversions = []Conversion{}
	}
	lines := d.Lines
	if lines == nil {
		lines = []string{}
	}

	return json.Marshal(&struct {
		Name         string       `json:"name"`
		Method       string       `json:"method"`
		Style        string       `json:"style"`
		GeneratedAt  string       `json:"generated_at"`
		WordCount    int          `json:"word_count"`
		ChangedCount int          `json:"changed_count"`
		Lines        []string     `json:"lines"`
		Vocabulary   []string     `json:"vocabulary"`
		Conversions  []Conversion `json:"conversions"`
	}{
		Name:         d.Name,
		Method:       d.Method,
		Style:        d.Style,
		GeneratedAt:  d.GeneratedAt,
		WordCount:    d.Count(),
		ChangedCount: d.ChangedCount(),
		Lines:        lines,
		Vocabulary:   d.Vocabulary(),
		Conversions:  conversions,
	})
}

// Save saves the document to a JSON file.
func (d *Document) Save(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(d)
}
