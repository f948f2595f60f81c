package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aurum-R/Shellfast/pkg/core"
)

func newCutCmd() *cobra.Command {
	var (
		delimiter string
		fieldSpec string
	)

	cmd := &cobra.Command{
		Use:   "cut <path>",
		Short: "Extract fields from each line",
		Long: `Cut extracts the selected fields from every line and re-emits them
joined by the delimiter, in ascending field order. The selector takes
comma-separated indices and inclusive ranges, e.g. "1,3-5".`,
		Args: cobra.ExactArgs(1),
		Example: `  # Second field of a colon-separated file
  shellfast cut -d : -f 2 /etc/passwd`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if delimiter == "" {
				delimiter = cfg.Cut.Delimiter
			}

			result, err := core.CutFile(core.CutOptions{
				Path:      args[0],
				Delimiter: delimiter,
				Fields:    fieldSpec,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", "", "Field delimiter character (default tab)")
	cmd.Flags().StringVarP(&fieldSpec, "fields", "f", "1", "Field selector, e.g. 1,3-5")

	return cmd
}

func newPasteCmd() *cobra.Command {
	var delimiter string

	cmd := &cobra.Command{
		Use:   "paste <path>...",
		Short: "Merge lines of files side by side",
		Long: `Paste joins the i-th line of every input file with the delimiter.
Shorter files contribute empty fields past their end, so every row
keeps one column per file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if delimiter == "" {
				delimiter = cfg.Paste.Delimiter
			}

			result, err := core.PasteFiles(core.PasteOptions{
				Paths:     args,
				Delimiter: delimiter,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", "", "Column delimiter (default tab)")

	return cmd
}

func newJoinCmd() *cobra.Command {
	var (
		fieldA    int
		fieldB    int
		separator string
	)

	cmd := &cobra.Command{
		Use:   "join <fileA> <fileB>",
		Short: "Join two files on a common field",
		Long: `Join matches lines of the two files on a key field and emits one
row per matching pair: the first file's line, the separator, then the
second file's line. Lines without a match are dropped.`,
		Args: cobra.ExactArgs(2),
		Example: `  # Join on the first whitespace-separated field
  shellfast join users.txt scores.txt

  # Join colon-separated files on field 2 of the second file
  shellfast join -t : -2 2 a.txt b.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if separator == "" {
				separator = cfg.Join.Separator
			}

			result, err := core.JoinFiles(core.JoinOptions{
				PathA:     args[0],
				PathB:     args[1],
				FieldA:    fieldA,
				FieldB:    fieldB,
				Separator: separator,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().IntVarP(&fieldA, "field-a", "1", 1, "Join field in the first file (1-based)")
	cmd.Flags().IntVarP(&fieldB, "field-b", "2", 1, "Join field in the second file (1-based)")
	cmd.Flags().StringVarP(&separator, "separator", "t", "", "Field separator (default whitespace)")

	return cmd
}

func newWcCmd() *cobra.Command {
	var (
		linesOnly bool
		wordsOnly bool
		charsOnly bool
		bytesOnly bool
	)

	cmd := &cobra.Command{
		Use:   "wc <path>",
		Short: "Count lines, words, characters, and bytes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, err := core.CountFile(core.WcOptions{
				Path:      args[0],
				LinesOnly: linesOnly,
				WordsOnly: wordsOnly,
				CharsOnly: charsOnly,
				BytesOnly: bytesOnly,
			})
			if err != nil {
				return err
			}

			renderer := newRenderer(loadConfig())
			fmt.Fprint(cmd.OutOrStdout(), renderer.RenderCounts(counts, linesOnly, wordsOnly, charsOnly, bytesOnly))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&linesOnly, "lines", "l", false, "Print only the line count")
	cmd.Flags().BoolVarP(&wordsOnly, "words", "w", false, "Print only the word count")
	cmd.Flags().BoolVarP(&charsOnly, "chars", "m", false, "Print only the character count")
	cmd.Flags().BoolVarP(&bytesOnly, "bytes", "c", false, "Print only the byte count")

	return cmd
}
