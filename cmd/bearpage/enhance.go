package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/net/html"
)

var enhanceCmd = &cobra.Command{
	Use:   "enhance <page.html>",
	Short: "Render species cards into an HTML page",
	Long:  `Reads an HTML page ("-" for stdin), fills its .more_bears container with species cards, optionally highlights a search query inside its articles and writes the result.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runEnhance,
}

func init() {
	enhanceCmd.Flags().StringP("output", "o", "", "output file (default stdout)")
	enhanceCmd.Flags().String("search", "", "highlight this query inside articles")
	enhanceCmd.Flags().String("page", "", "encyclopedia page to load (overrides config)")
	rootCmd.AddCommand(enhanceCmd)
}

func runEnhance(cmd *cobra.Command, args []string) error {
	client, err := buildClient()
	if err != nil {
		return err
	}

	doc, err := readDocument(cmd, args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	pageID, _ := cmd.Flags().GetString("page")
	count, err := client.RenderPage(ctx, doc, pageID)
	if err != nil {
		return fmt.Errorf("rendering species: %w", err)
	}

	query, _ := cmd.Flags().GetString("search")
	matches := client.Search(doc, query)

	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "Rendered %d cards, %d search matches\n", count, matches)
	}

	output, _ := cmd.Flags().GetString("output")
	return writeDocument(cmd, doc, output)
}

func readDocument(cmd *cobra.Command, path string) (*html.Node, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening page: %w", err)
		}
		defer f.Close()
		r = f
	}

	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}
	return doc, nil
}

func writeDocument(cmd *cobra.Command, doc *html.Node, path string) error {
	if path == "" {
		return html.Render(cmd.OutOrStdout(), doc)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := html.Render(f, doc); err != nil {
		f.Close()
		return fmt.Errorf("writing output: %w", err)
	}
	return f.Close()
}
