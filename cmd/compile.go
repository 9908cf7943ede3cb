package cmd

import (
	"github.com/itsmostafa/realbooks/internal/compile"
	"github.com/itsmostafa/realbooks/internal/ui"
	"github.com/spf13/cobra"
)

var compileCmd = &cobra.Command{
	Use:   "compile DIRECTORY...",
	Short: "Compile directories of songs into single PDFs",
	Long: `Merge every PDF found below each directory into one file placed in that
directory, with one bookmark per song. Equivalent to --compile-directory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(cmd)
		if err != nil {
			return err
		}

		results := compile.New(log, compress).CompileDirectories(args, compiledFilename)
		ui.FormatCompiled(cmd.OutOrStdout(), results)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compileCmd)
}
