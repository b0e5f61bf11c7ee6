package indexclean

import "github.com/jmylchreest/indexclean/pkg/cleaner/blocks"

// Option configures a Processor.
type Option func(*Config)

// WithConfig replaces the whole config.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}

// WithTags sets the block tags to remove, in order.
func WithTags(tags ...string) Option {
	return func(c *Config) {
		c.Tags = tags
	}
}

// WithStrategy sets the block matching strategy.
func WithStrategy(s blocks.Strategy) Option {
	return func(c *Config) {
		c.Strategy = s
	}
}

// WithLoaderSrc sets the injected script src.
func WithLoaderSrc(src string) Option {
	return func(c *Config) {
		c.Loader.Src = src
	}
}

// WithLoaderType sets the injected script type. Empty omits it.
func WithLoaderType(typ string) Option {
	return func(c *Config) {
		c.Loader.Type = typ
	}
}

// WithMarker sets the literal the loader is inserted before.
func WithMarker(marker string) Option {
	return func(c *Config) {
		c.Marker = marker
	}
}

// WithSkipIfPresent skips injection when the tag already exists.
func WithSkipIfPresent(enabled bool) Option {
	return func(c *Config) {
		c.SkipIfPresent = enabled
	}
}

// WithoutInject disables the loader stage.
func WithoutInject() Option {
	return func(c *Config) {
		c.SkipInject = true
	}
}
