package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aurum-R/Shellfast/pkg/core"
)

func newSortCmd() *cobra.Command {
	var (
		reverse    bool
		numeric    bool
		unique     bool
		ignoreCase bool
		key        int
		separator  string
	)

	cmd := &cobra.Command{
		Use:   "sort <path>",
		Short: "Sort lines of a text file",
		Long: `Sort orders the file's lines by a derived key. The sort is stable:
lines comparing equal keep their original relative order. --unique
removes lines equal to their immediate predecessor in the final
output.`,
		Args: cobra.ExactArgs(1),
		Example: `  # Sort numerically by the second colon-separated field
  shellfast sort -n -k 2 -t : scores.txt

  # Reverse sort, dropping adjacent duplicates
  shellfast sort -r -u names.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := core.SortFile(core.SortOptions{
				Path:       args[0],
				Reverse:    reverse,
				Numeric:    numeric,
				Unique:     unique,
				IgnoreCase: ignoreCase,
				Key:        key,
				Separator:  separator,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "Reverse the sort order")
	cmd.Flags().BoolVarP(&numeric, "numeric", "n", false, "Sort by numeric value of the key")
	cmd.Flags().BoolVarP(&unique, "unique", "u", false, "Drop lines equal to their predecessor")
	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "f", false, "Fold case when comparing keys")
	cmd.Flags().IntVarP(&key, "key", "k", 0, "Sort by the Nth field (1-based, 0 = whole line)")
	cmd.Flags().StringVarP(&separator, "separator", "t", "", "Field separator character (default whitespace)")

	return cmd
}
