package cli

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed help/*.md
var helpFS embed.FS

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topics [topic]",
		Short: "Show extended help topics",
		Long: `Topics lists the available extended help topics, or renders one
when named. Topics cover the pattern syntax, field selectors, and
output formats in more depth than the per-command help.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return listTopics(cmd)
			}
			return showTopic(cmd, args[0])
		},
	}
}

func listTopics(cmd *cobra.Command) error {
	names, err := topicNames()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Available topics:")
	for _, name := range names {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "\nUse \"shellfast topics <name>\" to read one.")
	return nil
}

func showTopic(cmd *cobra.Command, name string) error {
	content, err := helpFS.ReadFile("help/" + name + ".md")
	if err != nil {
		names, _ := topicNames()
		return fmt.Errorf("unknown topic %q (available: %s)", name, strings.Join(names, ", "))
	}

	fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(string(content)))
	return nil
}

func topicNames() ([]string, error) {
	entries, err := fs.ReadDir(helpFS, "help")
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".md"))
	}
	sort.Strings(names)
	return names, nil
}

// renderMarkdown converts markdown to terminal output, falling back
// to the raw text when the renderer cannot be built
func renderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
