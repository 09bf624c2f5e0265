package app

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/andyballingall/fmtgate/internal/config"
)

// Version is the current version of fmtgate, set at build time.
var Version = "dev"

var LongDescription = `
fmtgate checks the given files and directory trees for clang-format
conformance. Every discovered source file is piped through the formatter and
compared byte-for-byte against its on-disk content; files that would change
are reported and the process exits with status 2, making fmtgate suitable as
a CI style gate. No file is ever rewritten.
`

// NewRootCmd creates the root command and wires up dependencies.
func NewRootCmd(ll *slog.LevelVar, stdout, stderr io.Writer) *cobra.Command {
	var (
		workers  int
		exts     []string
		noIgnore bool
		noColour bool
		debug    bool
	)
	formatterExe := pathValue("")
	configPath := pathValue("")
	outputVal := formatValue("text")

	rootCmd := &cobra.Command{
		Use:           "fmtgate [flags] <path>...",
		Short:         "A style-conformance gate driven by clang-format",
		Version:       Version,
		Long:          LongDescription,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags have parsed by now; anything that fails from here on is
			// a check failure, not a usage error.
			cmd.SilenceUsage = true

			if debug {
				ll.Set(slog.LevelDebug)
			}
			logger, logCloser, err := setupLogger(stderr, ll)
			if err != nil {
				logger.Warn("logging to file disabled", "error", err)
			}
			if logCloser != nil {
				defer logCloser.Close()
			}

			cfg, err := resolveConfig(cmd.Flags(), string(configPath), settings{
				Formatter:  string(formatterExe),
				Workers:    workers,
				Extensions: exts,
				Output:     string(outputVal),
			})
			if err != nil {
				return err
			}

			return runCheck(cmd.Context(), logger, cfg, checkOptions{
				Inputs:    args,
				NoIgnore:  noIgnore,
				UseColour: !noColour,
			}, stdout, stderr)
		},
	}

	rootCmd.Flags().VarP(&formatterExe, "clang-format", "c", "the clang-format executable to use")
	rootCmd.Flags().IntVarP(&workers, "workers", "w", 0, "max concurrent formatter invocations (0 = one per CPU)")
	rootCmd.Flags().VarP(&outputVal, "output", "o", "output format (text, json)")
	rootCmd.Flags().StringSliceVar(&exts, "ext", nil, "file extension allow-list (default .cpp,.cc,.cxx,.c,.h,.hpp,.hxx)")
	rootCmd.Flags().BoolVar(&noIgnore, "no-ignore", false, "do not honour .fmtignore files")
	rootCmd.Flags().Var(&configPath, "config", "path to a config file (default ./"+config.ConfigFile+")")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	rootCmd.PersistentFlags().BoolVar(&noColour, "nocolour", false, "Disable colour in output")
	// Support alternate spellings
	rootCmd.PersistentFlags().BoolVar(&noColour, "nocolor", false, "")
	rootCmd.PersistentFlags().BoolVar(&noColour, "noColor", false, "")
	rootCmd.PersistentFlags().BoolVar(&noColour, "noColour", false, "")
	_ = rootCmd.PersistentFlags().MarkHidden("nocolor")
	_ = rootCmd.PersistentFlags().MarkHidden("noColor")
	_ = rootCmd.PersistentFlags().MarkHidden("noColour")

	return rootCmd
}
