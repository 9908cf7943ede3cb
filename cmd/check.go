package cmd

import (
	"github.com/itsmostafa/realbooks/internal/batch"
	"github.com/itsmostafa/realbooks/internal/config"
	"github.com/itsmostafa/realbooks/internal/ui"
	"github.com/spf13/cobra"
)

var checkConfigFile string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a configuration without writing any file",
	Long: `Load the configuration, resolve every song's pages and check them against
the page count of each real book. Nothing is written.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(cmd)
		if err != nil {
			return err
		}

		report, err := batch.New(log, false).Check(checkConfigFile)
		if err != nil {
			return err
		}
		ui.FormatCheck(cmd.OutOrStdout(), report)
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVarP(&checkConfigFile, "config-file", "c", config.DefaultConfigFile, "Path to the config file")
	rootCmd.AddCommand(checkCmd)
}
