package main

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/routelab/dtab/pkg/errors"
)

//go:embed docs/*.md
var topicDocs embed.FS

var topicsCmd = &cobra.Command{
	Use:   "topics [topic]",
	Short: "Show long-form documentation topics",
	Long:  `Without arguments, list the available topics. With a topic name, render it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			names, err := topicNames()
			if err != nil {
				return err
			}
			fmt.Println("Available topics:")
			for _, name := range names {
				fmt.Printf("  %s\n", name)
			}
			return nil
		}
		return showTopic(args[0])
	},
}

func topicNames() ([]string, error) {
	entries, err := topicDocs.ReadDir("docs")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "reading embedded topics")
	}
	var names []string
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".md"))
	}
	sort.Strings(names)
	return names, nil
}

func showTopic(name string) error {
	content, err := topicDocs.ReadFile("docs/" + name + ".md")
	if err != nil {
		return errors.Newf(errors.ErrNotFound, "no such topic %q", name)
	}
	fmt.Print(renderMarkdown(string(content)))
	return nil
}

// renderMarkdown converts markdown to terminal output, falling back to the
// raw text when glamour cannot render.
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
