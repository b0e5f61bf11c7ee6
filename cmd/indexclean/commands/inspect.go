package commands

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/indexclean/internal/document"
	"github.com/jmylchreest/indexclean/internal/logger"
	"github.com/jmylchreest/indexclean/internal/output"
	"github.com/jmylchreest/indexclean/pkg/inspect"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "List the blocks clean would remove, without writing",
	Long: `Inspect parses an HTML file and lists every configured block in
document order, with its parent element, src, inline size and attributes.
It also reports whether the marker and the loader tag are already present.

Examples:
  indexclean inspect index.html
  indexclean inspect --format yaml index.html
  indexclean inspect --tag noscript index.html`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().String("format", "text", "output format: text, json, jsonl, yaml")
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]

	formatStr, _ := cmd.Flags().GetString("format")
	format, err := output.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	content, err := document.Read(path)
	if err != nil {
		return err
	}

	r, err := inspect.Inspect(content, inspectOptions(loadConfig()))
	if err != nil {
		return err
	}
	r.Path = path
	logger.Debug("document inspected", "path", path, "blocks", r.Total())

	return writeReport(cmd.OutOrStdout(), format, inspectReport(r))
}
