package cmd

import (
	"os"

	"github.com/itsmostafa/realbooks/internal/pdfdoc"
	"github.com/itsmostafa/realbooks/internal/ui"
	"github.com/spf13/cobra"
)

var outlineCmd = &cobra.Command{
	Use:   "outline FILE",
	Short: "Print the bookmarks of a compiled book",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		entries, err := pdfdoc.ReadOutline(f)
		if err != nil {
			return err
		}
		ui.FormatOutline(cmd.OutOrStdout(), entries)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(outlineCmd)
}
