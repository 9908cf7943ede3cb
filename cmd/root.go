package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/itsmostafa/realbooks/internal/batch"
	"github.com/itsmostafa/realbooks/internal/compile"
	"github.com/itsmostafa/realbooks/internal/config"
	"github.com/itsmostafa/realbooks/internal/logging"
	"github.com/itsmostafa/realbooks/internal/ui"
	"github.com/itsmostafa/realbooks/internal/version"
	"github.com/spf13/cobra"
)

var configFile string
var compileDirectories []string
var compileFromConfig bool
var compiledFilename string
var compress bool

var debug bool
var logFormat string

var rootCmd = &cobra.Command{
	Use:   "realbooks",
	Short: "Split real books into individual song files",
	Long: `realbooks extracts songs from real book PDFs into one PDF per song, as
described by a YAML configuration, and can compile directories of songs back
into a single PDF with a bookmark per song.

Example configuration:

  - file: books/RealBook1.pdf
    offset: 6
    output_directory: songs/rb1
    abbreviation: RB1
    songs:
      - Autumn Leaves: 20-21
      - Blue Monk: 42
      - Giant Steps: [60, "62-63"]`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		// Compiling named directories bypasses the configuration entirely
		if len(compileDirectories) > 0 {
			ui.FormatHeader(out, "compile", fmt.Sprintf("%d director(ies)", len(compileDirectories)))
			results := compile.New(log, compress).CompileDirectories(compileDirectories, compiledFilename)
			ui.FormatCompiled(out, results)
			return nil
		}

		ui.FormatHeader(out, "split", configFile)
		report, err := batch.New(log, compress).Run(batch.Options{
			ConfigFile:        configFile,
			CompileFromConfig: compileFromConfig,
			CompiledFilename:  compiledFilename,
		})
		if err != nil {
			return err
		}

		ui.FormatSummary(out, report)
		return nil
	},
}

func init() {
	build := version.Get()
	rootCmd.Version = build.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("realbooks %s\n", build))

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Display debugging information")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")

	rootCmd.Flags().StringVarP(&configFile, "config-file", "c", config.DefaultConfigFile, "Path to the config file")
	rootCmd.Flags().StringArrayVar(&compileDirectories, "compile-directory", nil,
		"Compile the PDFs contained in the directory into a single file; repeatable, skips extraction")
	rootCmd.Flags().BoolVar(&compileFromConfig, "compile-from-config", false,
		"Compile every output directory that was defined in the configuration")
	rootCmd.PersistentFlags().StringVar(&compiledFilename, "compiled-filename", compile.DefaultFilename,
		"Name of the compiled PDF file written into each compiled directory")
	rootCmd.PersistentFlags().BoolVar(&compress, "compress", false,
		"Compress PDF streams when compiling to reduce the final file size")
}

// newLogger builds the run logger from the persistent flags. Logs go to
// stderr so that stdout only carries the rendered summary.
func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	format, err := logging.ParseFormat(logFormat)
	if err != nil {
		return nil, err
	}
	level := logging.LevelInfo
	if debug {
		level = logging.LevelDebug
	}
	return logging.New(cmd.ErrOrStderr(), level, format), nil
}

// Execute runs the root command. Errors returned by commands are printed
// here, once; commands do not log them.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		os.Exit(1)
	}
}
