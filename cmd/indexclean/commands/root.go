// Package commands implements the CLI commands for indexclean.
package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/indexclean/internal/logger"
	"github.com/jmylchreest/indexclean/pkg/cleaner/loader"
)

var rootCmd = &cobra.Command{
	Use:   "indexclean",
	Short: "Strip inline scripts and styles from an HTML entry page",
	Long: `Indexclean prepares a hand-built index.html for a bundler.

It removes every embedded <script> and <style> block and injects a single
module loader (default /src/main.js) before </body>, then writes the file
back in place.

Examples:
  # Clean in place
  indexclean clean index.html

  # Preview without touching the file
  indexclean clean --dry-run index.html

  # See what would be removed
  indexclean inspect index.html

  # Different entry point, only strip styles
  indexclean clean --tag style --loader-src /src/app.ts index.html`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initLogger,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()

	// Global flags
	flags.String("config", "", "config file (default $HOME/.indexclean.yaml)")
	flags.Bool("debug", false, "enable debug logging")
	flags.BoolP("quiet", "q", false, "suppress the completion notice and non-error logs")
	flags.Bool("log-json", false, "emit logs as JSON")

	// Document settings shared by clean and inspect
	flags.StringSlice("tag", []string{"script", "style"}, "block tags to remove, in order (repeatable)")
	flags.String("loader-src", loader.DefaultSrc, "src of the injected loader script")
	flags.String("loader-type", "module", "type of the injected loader script (empty to omit)")
	flags.String("marker", loader.DefaultMarker, "literal the loader is inserted before")

	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("debug", flags.Lookup("debug"))
	_ = viper.BindPFlag("quiet", flags.Lookup("quiet"))
	_ = viper.BindPFlag("log_json", flags.Lookup("log-json"))
	_ = viper.BindPFlag("tags", flags.Lookup("tag"))
	_ = viper.BindPFlag("loader.src", flags.Lookup("loader-src"))
	_ = viper.BindPFlag("loader.type", flags.Lookup("loader-type"))
	_ = viper.BindPFlag("marker", flags.Lookup("marker"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".indexclean")
		viper.SetConfigType("yaml")
	}

	// Environment variables: INDEXCLEAN_LOADER_SRC, INDEXCLEAN_SKIP_IF_PRESENT, ...
	viper.SetEnvPrefix("INDEXCLEAN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

func initLogger(cmd *cobra.Command, _ []string) error {
	logger.Init(logger.Options{
		Debug:  viper.GetBool("debug"),
		Quiet:  viper.GetBool("quiet"),
		JSON:   viper.GetBool("log_json"),
		Output: cmd.ErrOrStderr(),
	})
	if f := viper.ConfigFileUsed(); f != "" {
		logger.Debug("config loaded", "file", f)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
