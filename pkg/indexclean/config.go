package indexclean

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/jmylchreest/indexclean/pkg/cleaner/blocks"
	"github.com/jmylchreest/indexclean/pkg/cleaner/loader"
)

// ErrInvalidConfig is returned when a Config fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// LoaderConfig describes the injected script tag.
type LoaderConfig struct {
	Src  string `json:"src" yaml:"src" mapstructure:"src" validate:"required"`
	Type string `json:"type" yaml:"type" mapstructure:"type"`
}

// Config holds all processing configuration.
type Config struct {
	// Tags are removed in order. Each must be a raw-text element.
	Tags []string `json:"tags" yaml:"tags" mapstructure:"tags" validate:"required,min=1,dive,required,rawtext"`

	Strategy blocks.Strategy `json:"strategy" yaml:"strategy" mapstructure:"strategy" validate:"oneof=tokenizer regex"`

	Loader LoaderConfig `json:"loader" yaml:"loader" mapstructure:"loader"`

	// Marker is the literal the loader tag is inserted before.
	Marker string `json:"marker" yaml:"marker" mapstructure:"marker" validate:"required"`

	// SkipIfPresent makes injection idempotent.
	SkipIfPresent bool `json:"skip_if_present" yaml:"skip_if_present" mapstructure:"skip_if_present"`

	// SkipInject disables the loader stage entirely.
	SkipInject bool `json:"skip_inject" yaml:"skip_inject" mapstructure:"skip_inject"`
}

// DefaultConfig strips script then style blocks with the tokenizer and
// injects /src/main.js as a module before </body>.
func DefaultConfig() Config {
	return Config{
		Tags:     []string{"script", "style"},
		Strategy: blocks.StrategyTokenizer,
		Loader: LoaderConfig{
			Src:  loader.DefaultSrc,
			Type: "module",
		},
		Marker: loader.DefaultMarker,
	}
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func configValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("rawtext", func(fl validator.FieldLevel) bool {
			return blocks.IsRawTextTag(fl.Field().String())
		})
	})
	return validate
}

// Validate checks the config. Errors wrap ErrInvalidConfig.
func (c Config) Validate() error {
	err := configValidator().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required", "min":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fe.Value())
	case "rawtext":
		return fmt.Sprintf("%s: %q is not a raw-text element (allowed: %s)",
			field, fe.Value(), strings.Join(blocks.RawTextTags, ", "))
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

func (c Config) blocksConfig() *blocks.Config {
	return &blocks.Config{
		Tags:     c.Tags,
		Strategy: c.Strategy,
	}
}

func (c Config) loaderConfig() *loader.Config {
	return &loader.Config{
		Src:           c.Loader.Src,
		Type:          c.Loader.Type,
		Marker:        c.Marker,
		SkipIfPresent: c.SkipIfPresent,
	}
}
