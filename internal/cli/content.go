package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aurum-R/Shellfast/pkg/core"
)

func newCatCmd() *cobra.Command {
	var (
		numberLines  bool
		squeezeBlank bool
	)

	cmd := &cobra.Command{
		Use:   "cat <path>",
		Short: "Print file contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := core.Cat(core.CatOptions{
				Path:         args[0],
				NumberLines:  numberLines,
				SqueezeBlank: squeezeBlank,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&numberLines, "number", "n", false, "Number all output lines")
	cmd.Flags().BoolVarP(&squeezeBlank, "squeeze-blank", "s", false, "Suppress repeated blank lines")

	return cmd
}

func newEchoCmd() *cobra.Command {
	var noNewline bool

	cmd := &cobra.Command{
		Use:   "echo [text]",
		Short: "Print text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := ""
			if len(args) > 0 {
				text = args[0]
			}
			fmt.Fprint(cmd.OutOrStdout(), core.Echo(core.EchoOptions{
				Text:      text,
				NoNewline: noNewline,
			}))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&noNewline, "no-newline", "n", false, "Omit the trailing newline")

	return cmd
}

func newHeadCmd() *cobra.Command {
	var (
		lines int
		bytes int
	)

	cmd := &cobra.Command{
		Use:   "head <path>",
		Short: "Print the first lines of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("lines") {
				lines = loadConfig().Head.Lines
			}

			result, err := core.Head(core.HeadOptions{
				Path:  args[0],
				Lines: lines,
				Bytes: bytes,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 10, "Number of lines to print")
	cmd.Flags().IntVarP(&bytes, "bytes", "c", 0, "Print the first N bytes instead of lines")

	return cmd
}

func newTailCmd() *cobra.Command {
	var (
		lines int
		bytes int
	)

	cmd := &cobra.Command{
		Use:   "tail <path>",
		Short: "Print the last lines of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("lines") {
				lines = loadConfig().Tail.Lines
			}

			result, err := core.Tail(core.TailOptions{
				Path:  args[0],
				Lines: lines,
				Bytes: bytes,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 10, "Number of lines to print")
	cmd.Flags().IntVarP(&bytes, "bytes", "c", 0, "Print the last N bytes instead of lines")

	return cmd
}
