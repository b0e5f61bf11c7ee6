package commands

import (
	"github.com/spf13/viper"

	"github.com/jmylchreest/indexclean/pkg/cleaner/blocks"
	"github.com/jmylchreest/indexclean/pkg/indexclean"
	"github.com/jmylchreest/indexclean/pkg/inspect"
)

// loadConfig overlays flags, environment and config file onto the defaults.
func loadConfig() indexclean.Config {
	cfg := indexclean.DefaultConfig()

	if tags := viper.GetStringSlice("tags"); len(tags) > 0 {
		cfg.Tags = tags
	}
	if s := viper.GetString("strategy"); s != "" {
		cfg.Strategy = blocks.Strategy(s)
	}
	if src := viper.GetString("loader.src"); src != "" {
		cfg.Loader.Src = src
	}
	// An explicit empty type drops the attribute.
	if viper.IsSet("loader.type") {
		cfg.Loader.Type = viper.GetString("loader.type")
	}
	if m := viper.GetString("marker"); m != "" {
		cfg.Marker = m
	}
	cfg.SkipIfPresent = viper.GetBool("skip_if_present")
	cfg.SkipInject = viper.GetBool("skip_inject")

	return cfg
}

func inspectOptions(cfg indexclean.Config) inspect.Options {
	return inspect.Options{
		Tags:      cfg.Tags,
		LoaderSrc: cfg.Loader.Src,
		Marker:    cfg.Marker,
	}
}
