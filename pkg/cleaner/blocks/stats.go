package blocks

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Stats captures what a strip pass removed.
type Stats struct {
	InputBytes  int `json:"input_bytes" yaml:"input_bytes"`
	OutputBytes int `json:"output_bytes" yaml:"output_bytes"`

	// Removed counts removed blocks by tag.
	Removed map[string]int `json:"removed" yaml:"removed"`

	// Unterminated counts opening tags with no closing tag before EOF.
	// Those spans are kept as-is.
	Unterminated int `json:"unterminated,omitempty" yaml:"unterminated,omitempty"`

	Duration time.Duration `json:"duration_ns" yaml:"duration_ns"`
}

// NewStats creates a new Stats instance with initialized maps.
func NewStats() *Stats {
	return &Stats{
		Removed: make(map[string]int),
	}
}

// RecordRemoval records that a block was removed.
func (s *Stats) RecordRemoval(tag string) {
	s.Removed[strings.ToLower(tag)]++
}

// TotalRemoved returns the sum of all removed blocks.
func (s *Stats) TotalRemoved() int {
	total := 0
	for _, count := range s.Removed {
		total += count
	}
	return total
}

// String returns a one-line summary such as "script=2, style=1".
func (s *Stats) String() string {
	if len(s.Removed) == 0 {
		return "none"
	}
	tags := make([]string, 0, len(s.Removed))
	for tag := range s.Removed {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	parts := make([]string, 0, len(tags))
	for _, tag := range tags {
		parts = append(parts, fmt.Sprintf("%s=%d", tag, s.Removed[tag]))
	}
	return strings.Join(parts, ", ")
}

// Result contains the output of a strip pass.
type Result struct {
	Content string `json:"content"`
	Stats   *Stats `json:"stats"`
}
