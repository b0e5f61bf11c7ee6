// Package cleaner defines the stage contract shared by the document rewriters.
// Each stage takes the full document text and returns the rewritten text.
package cleaner

// Cleaner rewrites HTML document text.
type Cleaner interface {
	// Clean returns the rewritten document. Bytes the stage does not touch
	// are passed through unchanged.
	Clean(html string) (string, error)

	// Name returns the stage name for logging/debugging.
	Name() string
}
