package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/indexclean/internal/logger"
	"github.com/jmylchreest/indexclean/internal/output"
	"github.com/jmylchreest/indexclean/pkg/indexclean"
)

var cleanCmd = &cobra.Command{
	Use:   "clean <file>",
	Short: "Strip blocks and inject the loader, overwriting the file",
	Long: `Clean reads an HTML file, removes every configured block (script and
style by default), inserts the loader tag before every </body> (or
appends it when there is none) and writes the result back.

The original content is not backed up. The write truncates the file in
place; there is no temp-file rename and no locking.

Examples:
  indexclean clean index.html
  indexclean clean -o dist/index.html index.html
  indexclean clean --dry-run index.html
  indexclean clean --stats --format json index.html
  indexclean clean --strategy regex index.html`,
	Args: cobra.ExactArgs(1),
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	flags := cleanCmd.Flags()

	flags.String("strategy", "tokenizer", "block matching strategy: tokenizer, regex")
	flags.Bool("skip-if-present", false, "do not inject when the loader tag already exists")
	flags.Bool("no-inject", false, "only strip blocks, do not inject the loader")

	flags.StringP("output", "o", "", "write to this path instead of overwriting the input")
	flags.Bool("dry-run", false, "print the result to stdout and leave the file alone")
	flags.Bool("stats", false, "print what was removed")
	flags.String("format", "text", "stats format: text, json, yaml")

	_ = viper.BindPFlag("strategy", flags.Lookup("strategy"))
	_ = viper.BindPFlag("skip_if_present", flags.Lookup("skip-if-present"))
	_ = viper.BindPFlag("skip_inject", flags.Lookup("no-inject"))
}

func runClean(cmd *cobra.Command, args []string) error {
	path := args[0]

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := loadConfig()
	logger.Debug("clean configuration",
		"tags", cfg.Tags,
		"strategy", string(cfg.Strategy),
		"loader", cfg.Loader.Src,
		"marker", cfg.Marker,
		"skip_if_present", cfg.SkipIfPresent)

	p, err := indexclean.New(indexclean.WithConfig(cfg))
	if err != nil {
		return err
	}

	outPath, _ := cmd.Flags().GetString("output")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	showStats, _ := cmd.Flags().GetBool("stats")
	formatStr, _ := cmd.Flags().GetString("format")

	format, err := output.ParseFormat(formatStr)
	if err != nil {
		return err
	}
	if format == output.FormatJSONL {
		return fmt.Errorf("unsupported stats format: %s", format)
	}

	result, err := p.CleanFile(ctx, path, indexclean.FileOptions{
		OutputPath: outPath,
		DryRun:     dryRun,
	})
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		logger.Warn(w.Message, "phase", w.Phase, "path", path)
	}

	stdout := cmd.OutOrStdout()

	if dryRun {
		logger.Info("dry run, file not written", "path", path)
		_, err := fmt.Fprint(stdout, result.Content)
		return err
	}

	if showStats {
		if err := writeReport(stdout, format, statsReport(result)); err != nil {
			return err
		}
	}

	if !viper.GetBool("quiet") {
		fmt.Fprintf(stdout, "Cleaned %s\n", filepath.Base(result.OutputPath))
	}
	return nil
}
