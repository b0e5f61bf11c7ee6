// Package blocks removes whole raw-text elements, such as <script> and
// <style>, from an HTML document while leaving every other byte untouched.
package blocks

import "strings"

// Strategy selects how blocks are located.
type Strategy string

const (
	// StrategyTokenizer walks the document with an HTML tokenizer, once per
	// tag, and drops the raw bytes of matching elements, including those
	// nested in other raw-text elements.
	StrategyTokenizer Strategy = "tokenizer"

	// StrategyRegex applies `<tag\b[^>]*>[\s\S]*?</tag>` once per tag.
	// Case-sensitive and unaware of comments or quoted attributes.
	StrategyRegex Strategy = "regex"
)

// RawTextTags lists the element names the tokenizer reads as raw text.
// Only these can be stripped as a single opaque block.
var RawTextTags = []string{
	"script", "style", "noscript", "iframe", "noembed", "noframes",
	"textarea", "title", "xmp",
}

// IsRawTextTag reports whether tag names a raw-text element.
func IsRawTextTag(tag string) bool {
	tag = strings.ToLower(tag)
	for _, t := range RawTextTags {
		if t == tag {
			return true
		}
	}
	return false
}

// opensRawText reports whether the tokenizer reads the element's content
// as a single text token.
func opensRawText(tag string) bool {
	return tag == "plaintext" || IsRawTextTag(tag)
}

// Config defines what the stripper removes.
type Config struct {
	// Tags are the element names to remove, applied in order.
	Tags []string `json:"tags" yaml:"tags"`

	// Strategy is the matching strategy. Default: tokenizer.
	Strategy Strategy `json:"strategy" yaml:"strategy"`
}

// DefaultConfig removes script blocks, then style blocks, using the tokenizer.
func DefaultConfig() *Config {
	return &Config{
		Tags:     []string{"script", "style"},
		Strategy: StrategyTokenizer,
	}
}

// normalizedTags returns the configured tags lowercased and deduplicated,
// preserving order.
func (c *Config) normalizedTags() []string {
	seen := make(map[string]bool, len(c.Tags))
	tags := make([]string, 0, len(c.Tags))
	for _, t := range c.Tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tags = append(tags, t)
	}
	return tags
}
