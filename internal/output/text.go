package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Table is a titled grid rendered with borders in text output.
// Structured formats encode it like any other value.
type Table struct {
	Title   string     `json:"title,omitempty" yaml:"title,omitempty"`
	Headers []string   `json:"headers" yaml:"headers"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}

// Render draws the table.
func (t Table) Render() string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(t.Headers...).
		Rows(t.Rows...)

	if t.Title == "" {
		return tbl.String()
	}
	title := lipgloss.NewStyle().Bold(true).Render(t.Title)
	return title + "\n" + tbl.String()
}

// TextWriter writes human-readable output. Tables are drawn with borders,
// fmt.Stringer values use String, anything else is printed with %v.
type TextWriter struct {
	w *bufio.Writer
}

// NewTextWriter creates a text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w)}
}

// Write renders one item followed by a newline.
func (w *TextWriter) Write(data any) error {
	var s string
	switch v := data.(type) {
	case Table:
		s = v.Render()
	case *Table:
		s = v.Render()
	case fmt.Stringer:
		s = v.String()
	case string:
		s = v
	default:
		s = fmt.Sprintf("%v", v)
	}
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	_, err := w.w.WriteString(s)
	return err
}

// WriteAll renders items in order.
func (w *TextWriter) WriteAll(data []any) error {
	for _, item := range data {
		if err := w.Write(item); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the buffer.
func (w *TextWriter) Flush() error {
	return w.w.Flush()
}

// Close flushes the writer.
func (w *TextWriter) Close() error {
	return w.Flush()
}
