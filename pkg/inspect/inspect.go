// Package inspect reports which blocks a clean would remove, without
// modifying anything.
package inspect

import (
	"fmt"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jmylchreest/indexclean/pkg/cleaner/loader"
)

// Options selects what to look for.
type Options struct {
	Tags      []string
	LoaderSrc string
	Marker    string
}

// DefaultOptions mirrors the default clean configuration.
func DefaultOptions() Options {
	return Options{
		Tags:      []string{"script", "style"},
		LoaderSrc: loader.DefaultSrc,
		Marker:    loader.DefaultMarker,
	}
}

// Block is a single element found in the document.
type Block struct {
	Index int               `json:"index" yaml:"index"`
	Tag   string            `json:"tag" yaml:"tag"`
	Src   string            `json:"src,omitempty" yaml:"src,omitempty"`
	Attrs map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`

	// InlineBytes is the size of the element's text content.
	InlineBytes int `json:"inline_bytes" yaml:"inline_bytes"`

	// Parent is the enclosing element, usually head or body.
	Parent string `json:"parent" yaml:"parent"`
}

// Report is the inventory of one document.
type Report struct {
	Path   string         `json:"path,omitempty" yaml:"path,omitempty"`
	Blocks []Block        `json:"blocks" yaml:"blocks"`
	Counts map[string]int `json:"counts" yaml:"counts"`

	// HasMarker reports whether the literal marker occurs in the raw text.
	HasMarker bool `json:"has_marker" yaml:"has_marker"`

	// LoaderPresent reports whether a script with the loader src exists.
	LoaderPresent bool `json:"loader_present" yaml:"loader_present"`
}

// Inspect parses html and lists every block matching opts.Tags in
// document order.
func Inspect(html string, opts Options) (*Report, error) {
	if len(opts.Tags) == 0 {
		opts.Tags = DefaultOptions().Tags
	}
	if opts.Marker == "" {
		opts.Marker = loader.DefaultMarker
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	tags := make([]string, 0, len(opts.Tags))
	for _, t := range opts.Tags {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			tags = append(tags, t)
		}
	}

	report := &Report{
		Blocks:    []Block{},
		Counts:    make(map[string]int, len(tags)),
		HasMarker: strings.Contains(html, opts.Marker),
	}

	doc.Find(strings.Join(tags, ", ")).Each(func(i int, s *goquery.Selection) {
		tag := goquery.NodeName(s)
		b := Block{
			Index:       i,
			Tag:         tag,
			InlineBytes: len(s.Text()),
			Parent:      goquery.NodeName(s.Parent()),
		}
		if src, ok := s.Attr("src"); ok {
			b.Src = src
		}
		for _, a := range s.Nodes[0].Attr {
			if b.Attrs == nil {
				b.Attrs = make(map[string]string)
			}
			b.Attrs[a.Key] = a.Val
		}
		report.Blocks = append(report.Blocks, b)
		report.Counts[tag]++
	})

	if opts.LoaderSrc != "" {
		report.LoaderPresent = doc.Find("script[src]").FilterFunction(func(_ int, s *goquery.Selection) bool {
			src, _ := s.Attr("src")
			return src == opts.LoaderSrc
		}).Length() > 0
	}

	return report, nil
}

// Total returns the number of blocks found.
func (r *Report) Total() int {
	return len(r.Blocks)
}

// Summary returns a one-line description such as "3 blocks (script=2, style=1)".
func (r *Report) Summary() string {
	if len(r.Counts) == 0 {
		return "0 blocks"
	}
	tags := make([]string, 0, len(r.Counts))
	for t := range r.Counts {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, fmt.Sprintf("%s=%d", t, r.Counts[t]))
	}
	return fmt.Sprintf("%d blocks (%s)", r.Total(), strings.Join(parts, ", "))
}
