package cli

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	builtindocs "github.com/aidanlsb/sq/docs"
	"github.com/aidanlsb/sq/internal/ui"
)

const docsRoot = "reference"

var docsCmd = &cobra.Command{
	Use:   "docs [topic]",
	Short: "Browse built-in documentation",
	Long: `List or read the built-in reference documentation.

Without arguments, lists available topics. With a topic name, renders that
topic to the terminal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return listDocTopics(cmd)
		}
		return showDocTopic(cmd, args[0])
	},
}

func docTopics() ([]string, error) {
	entries, err := fs.ReadDir(builtindocs.FS, docsRoot)
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}
		topics = append(topics, strings.TrimSuffix(name, ".md"))
	}
	sort.Strings(topics)
	return topics, nil
}

func listDocTopics(cmd *cobra.Command) error {
	topics, err := docTopics()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.Header("Topics"))
	for _, topic := range topics {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", topic)
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.Hint("\nRead one with: sq docs <topic>"))
	return nil
}

func showDocTopic(cmd *cobra.Command, topic string) error {
	data, err := fs.ReadFile(builtindocs.FS, path.Join(docsRoot, topic+".md"))
	if err != nil {
		topics, listErr := docTopics()
		if listErr == nil {
			return fmt.Errorf("unknown topic %q (available: %s)", topic, strings.Join(topics, ", "))
		}
		return fmt.Errorf("unknown topic %q", topic)
	}

	if !ui.IsTTY() {
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	}

	rendered, err := ui.RenderMarkdown(string(data), ui.TermWidth())
	if err != nil {
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
