package indexclean

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/indexclean/pkg/cleaner/loader"
)

// Stats captures what a run did to the document.
type Stats struct {
	InputBytes  int `json:"input_bytes" yaml:"input_bytes"`
	OutputBytes int `json:"output_bytes" yaml:"output_bytes"`

	// Removed counts removed blocks by tag.
	Removed map[string]int `json:"removed" yaml:"removed"`

	// Unterminated counts blocks left in place because they never close.
	Unterminated int `json:"unterminated" yaml:"unterminated"`

	// Placement is empty when injection is disabled.
	Placement loader.Placement `json:"placement,omitempty" yaml:"placement,omitempty"`

	StripDuration time.Duration `json:"strip_duration_ns" yaml:"strip_duration_ns"`
	TotalDuration time.Duration `json:"total_duration_ns" yaml:"total_duration_ns"`
}

// TotalRemoved returns the sum of all removed blocks.
func (s *Stats) TotalRemoved() int {
	total := 0
	for _, n := range s.Removed {
		total += n
	}
	return total
}

// String returns a human-readable summary of the stats.
func (s *Stats) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Size: %s -> %s\n",
		humanize.Bytes(uint64(s.InputBytes)), humanize.Bytes(uint64(s.OutputBytes))))

	sb.WriteString(fmt.Sprintf("Blocks removed: %d", s.TotalRemoved()))
	if len(s.Removed) > 0 {
		parts := make([]string, 0, len(s.Removed))
		for _, tag := range sortedKeys(s.Removed) {
			parts = append(parts, fmt.Sprintf("%s=%d", tag, s.Removed[tag]))
		}
		sb.WriteString(" (" + strings.Join(parts, ", ") + ")")
	}
	sb.WriteString("\n")

	if s.Unterminated > 0 {
		sb.WriteString(fmt.Sprintf("Unterminated blocks kept: %d\n", s.Unterminated))
	}
	if s.Placement != "" {
		sb.WriteString(fmt.Sprintf("Loader: %s\n", s.Placement))
	}

	sb.WriteString(fmt.Sprintf("Timing: strip=%v, total=%v\n",
		s.StripDuration.Round(time.Microsecond),
		s.TotalDuration.Round(time.Microsecond)))

	return sb.String()
}

// Warning represents a non-fatal observation about the document.
type Warning struct {
	Phase   string `json:"phase" yaml:"phase"`
	Message string `json:"message" yaml:"message"`
}

// String returns a formatted warning message.
func (w Warning) String() string {
	return fmt.Sprintf("[%s] %s", w.Phase, w.Message)
}

// Result contains the output of a run.
type Result struct {
	// Path is the input file; empty for in-memory runs.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	// OutputPath is where the content was written; empty when not written.
	OutputPath string `json:"output_path,omitempty" yaml:"output_path,omitempty"`

	Content string `json:"-" yaml:"-"`

	Stats *Stats `json:"stats" yaml:"stats"`

	Warnings []Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// AddWarning adds a warning to the result.
func (r *Result) AddWarning(phase, message string) {
	r.Warnings = append(r.Warnings, Warning{Phase: phase, Message: message})
}

// HasWarnings returns true if any warnings were recorded.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Written reports whether the content was persisted.
func (r *Result) Written() bool {
	return r.OutputPath != ""
}
