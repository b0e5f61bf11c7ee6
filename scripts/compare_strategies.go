// compare_strategies.go - Compare the tokenizer and regex block strategies
//
// Usage: go run scripts/compare_strategies.go <file.html> [tag...]
//
// Example:
//   go run scripts/compare_strategies.go public/index.html
//   go run scripts/compare_strategies.go public/index.html script style noscript

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jmylchreest/indexclean/internal/document"
	"github.com/jmylchreest/indexclean/pkg/cleaner/blocks"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/compare_strategies.go <file.html> [tag...]")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  go run scripts/compare_strategies.go public/index.html")
		fmt.Println("  go run scripts/compare_strategies.go public/index.html script style noscript")
		os.Exit(1)
	}

	html, err := document.Read(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	tags := []string{"script", "style"}
	if len(os.Args) > 2 {
		tags = os.Args[2:]
	}

	fmt.Printf("Input size: %d bytes\n\n", len(html))

	outputs := make(map[blocks.Strategy]string)
	for _, strategy := range []blocks.Strategy{blocks.StrategyTokenizer, blocks.StrategyRegex} {
		fmt.Println("=" + strings.Repeat("=", 60))
		fmt.Printf("STRATEGY: %s\n", strategy)
		fmt.Println("=" + strings.Repeat("=", 60))

		s, err := blocks.New(&blocks.Config{Tags: tags, Strategy: strategy})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		res, err := s.CleanWithStats(html)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		outputs[strategy] = res.Content

		fmt.Printf("Output size:  %d bytes\n", res.Stats.OutputBytes)
		fmt.Printf("Removed:      %s\n", res.Stats.String())
		fmt.Printf("Unterminated: %d\n", res.Stats.Unterminated)
		fmt.Printf("Duration:     %s\n\n", res.Stats.Duration)
	}

	a, b := outputs[blocks.StrategyTokenizer], outputs[blocks.StrategyRegex]
	if a == b {
		fmt.Println("Outputs are identical.")
		return
	}

	at := firstDiff(a, b)
	fmt.Printf("Outputs differ at byte %d:\n", at)
	fmt.Printf("  tokenizer: %q\n", excerpt(a, at))
	fmt.Printf("  regex:     %q\n", excerpt(b, at))
}

func firstDiff(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func excerpt(s string, at int) string {
	end := min(at+60, len(s))
	return s[at:end]
}
