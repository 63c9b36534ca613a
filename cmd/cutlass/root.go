package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/cutlass-tools/cutlass"
	"github.com/cutlass-tools/cutlass/pkg/config"
)

var (
	byteList      string
	charList      string
	fieldList     string
	delimiter     string
	outputDelim   string
	onlyDelimited bool
	complemented  bool
	zeroTerm      bool
	noSplit       bool
	configPath    string
	colorMode     string
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "cutlass [flags] [file...]",
	Short: "Cutlass - print selected parts of lines",
	Long: `Cutlass prints selected parts of each line of its input files to standard output.

Exactly one of --bytes, --characters, or --fields selects what to cut.
LIST is made up of one range, or many ranges separated by commas: N, N-M,
N- (through the end of the line), or -M (from the start of the line).
With no file arguments, or when a file is -, cutlass reads standard input.`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runCut,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&byteList, "bytes", "b", "", "Select only these bytes (LIST)")
	flags.StringVarP(&charList, "characters", "c", "", "Select only these characters (LIST)")
	flags.StringVarP(&fieldList, "fields", "f", "", "Select only these fields (LIST)")
	flags.StringVarP(&delimiter, "delimiter", "d", "\t", "Use DELIM instead of TAB as the field delimiter")
	flags.StringVar(&outputDelim, "output-delimiter", "", "Join output fields with STRING (default: the input delimiter)")
	flags.BoolVarP(&onlyDelimited, "only-delimited", "s", false, "Do not print lines that contain no delimiter")
	flags.BoolVar(&complemented, "complement", false, "Keep the positions the list does not select")
	flags.BoolVarP(&zeroTerm, "zero-terminated", "z", false, "Line delimiter is NUL, not newline")
	flags.BoolVarP(&noSplit, "no-split", "n", false, "Ignored, accepted for compatibility")
	rootCmd.MarkFlagsMutuallyExclusive("bytes", "characters", "fields")

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Defaults file (default: "+config.DefaultPath+" if present)")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "Color diagnostics: auto, always, never")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.Version = version
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runCut(cmd *cobra.Command, args []string) error {
	defaults, err := loadDefaults()
	if err != nil {
		return err
	}
	if defaults.Delimiter != "" && !cmd.Flags().Changed("delimiter") {
		delimiter = defaults.Delimiter
	}
	if defaults.OutputDelimiter != "" && outputDelim == "" && !cmd.Flags().Changed("output-delimiter") {
		outputDelim = defaults.OutputDelimiter
	}
	if defaults.Color != "" && !cmd.Flags().Changed("color") {
		colorMode = defaults.Color
	}
	configureColor()

	mode, list, err := selectedMode()
	if err != nil {
		return err
	}

	opts := []cutlass.Option{cutlass.WithDelimiter(delimiter)}
	if outputDelim != "" || cmd.Flags().Changed("output-delimiter") {
		opts = append(opts, cutlass.WithOutputDelimiter(outputDelim))
	}
	if complemented {
		opts = append(opts, cutlass.WithComplement())
	}
	if onlyDelimited {
		opts = append(opts, cutlass.WithOnlyDelimited())
	}
	if zeroTerm {
		opts = append(opts, cutlass.WithZeroTerminated())
	}
	if verbose {
		// Development config logs at Debug, where the pipeline reports
		// per-source record counts.
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		defer logger.Sync()
		opts = append(opts, cutlass.WithLogger(logger))
	}

	cutter, err := cutlass.New(mode, list, opts...)
	if err != nil {
		return err
	}
	return cutter.Run(args, cmd.OutOrStdout())
}

// selectedMode picks the cutting unit from the mode flags. An empty list
// value counts as not selected.
func selectedMode() (cutlass.Mode, string, error) {
	switch {
	case byteList != "":
		return cutlass.Bytes, byteList, nil
	case charList != "":
		return cutlass.Characters, charList, nil
	case fieldList != "":
		return cutlass.Fields, fieldList, nil
	}
	return 0, "", fmt.Errorf("you must specify a list of bytes, characters, or fields")
}

func loadDefaults() (config.Defaults, error) {
	if configPath != "" {
		return config.Load(configPath, true)
	}
	return config.Load(config.DefaultPath, false)
}

// configureColor applies the --color policy to stderr diagnostics. Output
// records on stdout are never styled.
func configureColor() {
	switch colorMode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default: // "auto"
		// Check if stderr is a TTY and NO_COLOR is not set
		if !term.IsTerminal(int(os.Stderr.Fd())) || os.Getenv("NO_COLOR") != "" {
			color.NoColor = true
		} else {
			color.NoColor = false
		}
	}
}
