package blocks

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// Stripper removes configured blocks from a document.
// It implements the cleaner.Cleaner interface.
type Stripper struct {
	config   *Config
	tags     []string
	targets  map[string]bool
	patterns []*regexp.Regexp
	stats    *Stats
}

// New creates a Stripper. If config is nil, DefaultConfig() is used.
func New(config *Config) (*Stripper, error) {
	if config == nil {
		config = DefaultConfig()
	}

	tags := config.normalizedTags()
	if len(tags) == 0 {
		return nil, errors.New("no tags configured")
	}

	s := &Stripper{
		config:  config,
		tags:    tags,
		targets: make(map[string]bool, len(tags)),
	}

	switch config.Strategy {
	case StrategyTokenizer, "":
		for _, t := range tags {
			if !IsRawTextTag(t) {
				return nil, fmt.Errorf("tag %q is not a raw-text element", t)
			}
			s.targets[t] = true
		}
	case StrategyRegex:
		for _, t := range tags {
			s.targets[t] = true
			s.patterns = append(s.patterns, blockPattern(t))
		}
	default:
		return nil, fmt.Errorf("unknown strategy %q", config.Strategy)
	}

	return s, nil
}

// blockPattern matches one block of tag, non-greedy up to the nearest
// closing tag.
func blockPattern(tag string) *regexp.Regexp {
	q := regexp.QuoteMeta(tag)
	return regexp.MustCompile(`<` + q + `\b[^>]*>[\s\S]*?</` + q + `>`)
}

// Name returns the cleaner name for logging.
func (s *Stripper) Name() string {
	return "blocks(" + strings.Join(s.tags, ",") + ")"
}

// Clean removes the configured blocks.
func (s *Stripper) Clean(html string) (string, error) {
	result, err := s.CleanWithStats(html)
	if err != nil {
		return "", err
	}
	return result.Content, nil
}

// CleanWithStats removes the configured blocks and reports what went.
func (s *Stripper) CleanWithStats(html string) (*Result, error) {
	start := time.Now()
	stats := NewStats()
	stats.InputBytes = len(html)

	var (
		out string
		err error
	)
	if s.config.Strategy == StrategyRegex {
		out = s.stripRegex(html, stats)
	} else {
		out, err = s.stripTokens(html, stats)
		if err != nil {
			return nil, err
		}
	}

	stats.OutputBytes = len(out)
	stats.Duration = time.Since(start)
	s.stats = stats

	return &Result{Content: out, Stats: stats}, nil
}

// Stats returns the stats from the last Clean operation.
func (s *Stripper) Stats() *Stats {
	return s.stats
}

// stripRegex applies one pattern per tag, in configured order.
func (s *Stripper) stripRegex(src string, stats *Stats) string {
	for i, re := range s.patterns {
		tag := s.tags[i]
		src = re.ReplaceAllStringFunc(src, func(string) string {
			stats.RecordRemoval(tag)
			return ""
		})
	}
	return src
}

// stripTokens runs one tokenizer pass per tag, in configured order.
func (s *Stripper) stripTokens(src string, stats *Stats) (string, error) {
	for _, tag := range s.tags {
		out, err := stripTag(src, tag, stats)
		if err != nil {
			return "", err
		}
		src = out
	}
	return src, nil
}

// stripTag copies the raw bytes of every token except those belonging to a
// tag element. A tag element that never closes is flushed back verbatim.
// The text of any other raw-text element (noscript, title, ...) is opaque
// to the tokenizer, so it is stripped on its own.
func stripTag(src, tag string, stats *Stats) (string, error) {
	z := html.NewTokenizer(strings.NewReader(src))

	var out, pending bytes.Buffer
	out.Grow(len(src))
	open, inRaw := false, false

	for {
		tt := z.Next()
		// TagName lowercases the token buffer in place, so copy first.
		raw := bytes.Clone(z.Raw())

		if tt == html.ErrorToken {
			if open {
				pending.Write(raw)
			} else {
				out.Write(raw)
			}
			if err := z.Err(); err != io.EOF {
				return "", fmt.Errorf("tokenizing document: %w", err)
			}
			break
		}

		if open {
			pending.Write(raw)
			if tt == html.EndTagToken {
				if name, _ := z.TagName(); string(name) == tag {
					stats.RecordRemoval(tag)
					open = false
					pending.Reset()
				}
			}
			continue
		}

		if tt == html.TextToken && inRaw {
			inRaw = false
			inner, err := stripTag(string(raw), tag, stats)
			if err != nil {
				return "", err
			}
			out.WriteString(inner)
			continue
		}
		inRaw = false

		if tt == html.StartTagToken || tt == html.SelfClosingTagToken {
			name, _ := z.TagName()
			if string(name) == tag {
				open = true
				pending.Write(raw)
				continue
			}
			inRaw = opensRawText(string(name))
		}

		out.Write(raw)
	}

	if open {
		stats.Unterminated++
		out.Write(pending.Bytes())
	}

	return out.String(), nil
}
