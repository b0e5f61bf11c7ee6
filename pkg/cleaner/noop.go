package cleaner

// NoopCleaner returns the document unchanged. The processor puts it in the
// loader slot when injection is switched off, so a strip-only run still goes
// through a two-stage chain and logs the same pipeline shape.
type NoopCleaner struct{}

// NewNoop returns the pass-through stage.
func NewNoop() *NoopCleaner {
	return &NoopCleaner{}
}

// Clean returns html as given.
func (c *NoopCleaner) Clean(html string) (string, error) {
	return html, nil
}

// Name identifies the stage in chain names such as "chain(blocks(script)->noop)".
func (c *NoopCleaner) Name() string {
	return "noop"
}
