package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aurum-R/Shellfast/pkg/core"
)

func newDiffCmd() *cobra.Command {
	var (
		plain   bool
		context int
	)

	cmd := &cobra.Command{
		Use:   "diff <fileA> <fileB>",
		Short: "Compare two files line by line",
		Long: `Diff computes a minimal edit script between two files using an
LCS-based algorithm. Unified output (the default) shows every line
with a +/-/space prefix under ---/+++ headers; --plain shows only the
changed lines.`,
		Args: cobra.ExactArgs(2),
		Example: `  # Unified diff
  shellfast diff old.txt new.txt

  # Only additions and deletions
  shellfast diff --plain old.txt new.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if !cmd.Flags().Changed("context") {
				context = cfg.Diff.Context
			}

			result, err := core.DiffFiles(core.DiffOptions{
				PathA:   args[0],
				PathB:   args[1],
				Unified: !plain,
				Context: context,
			})
			if err != nil {
				return err
			}

			renderer := newRenderer(cfg)
			fmt.Fprint(cmd.OutOrStdout(), renderer.RenderDiff(result.Rendered))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Show only changed lines, no headers")
	cmd.Flags().IntVarP(&context, "context", "C", 3, "Context lines (accepted; output is never truncated)")

	return cmd
}

func newCmpCmd() *cobra.Command {
	var silent bool

	cmd := &cobra.Command{
		Use:   "cmp <fileA> <fileB>",
		Short: "Compare two files byte by byte",
		Long: `Cmp reports the first byte and line number at which two files
differ. With --silent only the exit status reflects the result.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := core.CompareBytes(core.CmpOptions{
				PathA:  args[0],
				PathB:  args[1],
				Silent: silent,
			})
			if err != nil {
				return err
			}

			if !silent {
				renderer := newRenderer(loadConfig())
				fmt.Fprint(cmd.OutOrStdout(), renderer.RenderCmp(result))
			}
			if !result.Identical {
				// Mirror the classic utility: differing files exit 1,
				// with no output beyond what was already rendered.
				return ErrQuietFailure
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&silent, "silent", "s", false, "Suppress output, report via exit status only")

	return cmd
}

func newCommCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comm <fileA> <fileB>",
		Short: "Partition the lines of two files",
		Long: `Comm treats each file's lines as a set and prints three sections:
lines only in the first file, lines only in the second, and lines in
both. Inputs need not be sorted; output within each section is
sorted.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := core.CompareSets(core.CommOptions{
				PathA: args[0],
				PathB: args[1],
			})
			if err != nil {
				return err
			}

			renderer := newRenderer(loadConfig())
			fmt.Fprint(cmd.OutOrStdout(), renderer.RenderComm(result))
			return nil
		},
	}
}
