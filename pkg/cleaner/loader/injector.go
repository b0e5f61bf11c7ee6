// Package loader inserts an external module script tag into an HTML document.
package loader

import (
	"html"
	"strings"
)

// DefaultSrc is the script path injected when none is configured.
const DefaultSrc = "/src/main.js"

// DefaultMarker is the literal that marks the end of the document body.
const DefaultMarker = "</body>"

// Placement describes where the loader tag ended up.
type Placement string

const (
	// PlacementBeforeMarker means the tag was inserted before every marker.
	PlacementBeforeMarker Placement = "before-marker"

	// PlacementAppended means no marker was found and the tag was appended.
	PlacementAppended Placement = "appended"

	// PlacementSkipped means the tag already existed and SkipIfPresent was set.
	PlacementSkipped Placement = "skipped"
)

// Config defines the injected tag and where it goes.
type Config struct {
	// Src is the script src attribute.
	Src string `json:"src" yaml:"src"`

	// Type is the script type attribute. Empty omits the attribute.
	Type string `json:"type" yaml:"type"`

	// Marker is matched literally and case-sensitively.
	Marker string `json:"marker" yaml:"marker"`

	// SkipIfPresent leaves the document alone when the exact tag is
	// already in it. Without it every Inject adds another tag.
	SkipIfPresent bool `json:"skip_if_present" yaml:"skip_if_present"`
}

// DefaultConfig returns the module loader for /src/main.js before </body>.
func DefaultConfig() *Config {
	return &Config{
		Src:    DefaultSrc,
		Type:   "module",
		Marker: DefaultMarker,
	}
}

// Tag renders the script element for this config.
func (c *Config) Tag() string {
	var sb strings.Builder
	sb.WriteString("<script")
	if c.Type != "" {
		sb.WriteString(` type="`)
		sb.WriteString(html.EscapeString(c.Type))
		sb.WriteString(`"`)
	}
	sb.WriteString(` src="`)
	sb.WriteString(html.EscapeString(c.Src))
	sb.WriteString(`"></script>`)
	return sb.String()
}

// Injector inserts the loader tag.
// It implements the cleaner.Cleaner interface.
type Injector struct {
	config    *Config
	tag       string
	placement Placement
}

// New creates an Injector. If config is nil, DefaultConfig() is used.
// An empty marker falls back to DefaultMarker.
func New(config *Config) *Injector {
	if config == nil {
		config = DefaultConfig()
	}
	cfg := *config
	if cfg.Marker == "" {
		cfg.Marker = DefaultMarker
	}
	return &Injector{
		config: &cfg,
		tag:    cfg.Tag(),
	}
}

// Name returns the cleaner name for logging.
func (i *Injector) Name() string {
	return "loader"
}

// Tag returns the rendered loader tag.
func (i *Injector) Tag() string {
	return i.tag
}

// Clean injects the loader tag. It never fails.
func (i *Injector) Clean(html string) (string, error) {
	out, placement := i.Inject(html)
	i.placement = placement
	return out, nil
}

// Placement returns where the last Clean put the tag.
func (i *Injector) Placement() Placement {
	return i.placement
}

// Inject inserts the tag plus a line break before every occurrence of the
// marker, or appends a line break plus the tag when there is none.
func (i *Injector) Inject(html string) (string, Placement) {
	if i.config.SkipIfPresent && strings.Contains(html, i.tag) {
		return html, PlacementSkipped
	}

	marker := i.config.Marker
	if !strings.Contains(html, marker) {
		return html + "\n" + i.tag, PlacementAppended
	}
	return strings.ReplaceAll(html, marker, i.tag+"\n"+marker), PlacementBeforeMarker
}
