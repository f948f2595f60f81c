// Package cli wires the engines to a cobra command tree. Commands
// only parse flags and render results; all behavior lives in
// pkg/core.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Aurum-R/Shellfast/internal/version"
	"github.com/Aurum-R/Shellfast/pkg/config"
	"github.com/Aurum-R/Shellfast/pkg/logging"
	"github.com/Aurum-R/Shellfast/pkg/output"
)

// ErrQuietFailure signals a nonzero exit where the outcome has
// already been reported (or deliberately suppressed); main must not
// print anything for it.
var ErrQuietFailure = errors.New("quiet failure")

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "shellfast",
		Short: "Line- and field-oriented text processing",
		Long: `shellfast searches, sorts, diffs, and restructures line-based text
data. Each subcommand mirrors a classic text utility (grep, sort,
diff, cmp, comm, cut, paste, join, wc) backed by a shared engine.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGrepCmd())
	rootCmd.AddCommand(newSortCmd())
	rootCmd.AddCommand(newDiffCmd())
	rootCmd.AddCommand(newCmpCmd())
	rootCmd.AddCommand(newCommCmd())
	rootCmd.AddCommand(newCutCmd())
	rootCmd.AddCommand(newPasteCmd())
	rootCmd.AddCommand(newJoinCmd())
	rootCmd.AddCommand(newWcCmd())
	rootCmd.AddCommand(newCatCmd())
	rootCmd.AddCommand(newEchoCmd())
	rootCmd.AddCommand(newHeadCmd())
	rootCmd.AddCommand(newTailCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newTopicsCmd())

	return rootCmd
}

// loadConfig resolves the tool configuration, degrading to embedded
// defaults with a warning when the user config is unreadable
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using built-in defaults\n", err)
		return config.Default()
	}
	return cfg
}

// newRenderer builds the result renderer using the configured color
// mode, applying user style overrides when a styles file is set
func newRenderer(cfg *config.Config) *output.Renderer {
	if cfg.Output.Styles != "" {
		if err := output.LoadStylesFromFile(cfg.Output.Styles); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot load styles from %s: %v\n", cfg.Output.Styles, err)
		}
	}
	return output.NewRenderer(cfg.Output.Color)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("shellfast version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Printf("Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Printf("Built:  %s\n", version.Date)
			}
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genconfig",
		Short: "Print the default configuration",
		Long: `Genconfig prints the built-in defaults as TOML, ready to be saved
as shellfast.toml in your config directory and edited.`,
		Example: `  # Inspect the defaults
  shellfast genconfig

  # Seed a user config
  shellfast genconfig > ~/.config/shellfast/shellfast.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rendered, err := config.GenerateTOML(config.Default())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}
