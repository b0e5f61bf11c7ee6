package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/indexclean/internal/output"
	"github.com/jmylchreest/indexclean/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		formatStr, _ := cmd.Flags().GetString("format")
		format, err := output.ParseFormat(formatStr)
		if err != nil {
			return err
		}

		if format != output.FormatText {
			return writeReport(cmd.OutOrStdout(), format, report{data: version.Get()})
		}
		if full, _ := cmd.Flags().GetBool("full"); full {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Full())
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "indexclean %s\n", version.String())
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().Bool("full", false, "show commit, build date and platform")
	versionCmd.Flags().String("format", "text", "output format: text, json, yaml")
}
