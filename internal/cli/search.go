package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Aurum-R/Shellfast/pkg/core"
)

func newGrepCmd() *cobra.Command {
	var (
		ignoreCase bool
		wholeWord  bool
		invert     bool
		recursive  bool
		noNumbers  bool
		countOnly  bool
		filesOnly  bool
	)

	cmd := &cobra.Command{
		Use:   "grep <pattern> <path>",
		Short: "Search for a pattern in files",
		Long: `Grep searches for lines matching a regular expression within a file,
or within every regular file under a directory when --recursive is
given. Output lists matching lines, per-file counts with --count, or
matching filenames with --files-with-matches.`,
		Args: cobra.ExactArgs(2),
		Example: `  # List matching lines with line numbers
  shellfast grep 'err' service.log

  # Count matches across a tree
  shellfast grep --count --recursive 'TODO' src/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Info().
				Str("pattern", args[0]).
				Str("path", args[1]).
				Bool("recursive", recursive).
				Msg("Searching")

			result, err := core.Grep(core.GrepOptions{
				Pattern:     args[0],
				Path:        args[1],
				IgnoreCase:  ignoreCase,
				WholeWord:   wholeWord,
				Invert:      invert,
				Recursive:   recursive,
				LineNumbers: !noNumbers,
				CountOnly:   countOnly,
				FilesOnly:   filesOnly,
			})
			if err != nil {
				return err
			}

			renderer := newRenderer(loadConfig())
			fmt.Fprint(cmd.OutOrStdout(), renderer.RenderGrep(result))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "Case-insensitive matching")
	cmd.Flags().BoolVarP(&wholeWord, "word", "w", false, "Match whole words only")
	cmd.Flags().BoolVarP(&invert, "invert", "V", false, "Select non-matching lines")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Search directories recursively")
	cmd.Flags().BoolVarP(&countOnly, "count", "c", false, "Print only match counts per file")
	cmd.Flags().BoolVarP(&filesOnly, "files-with-matches", "l", false, "Print only names of matching files")
	cmd.Flags().BoolVar(&noNumbers, "no-line-numbers", false, "Omit line numbers from matches")

	return cmd
}
