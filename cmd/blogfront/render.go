package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/blogfront/blogfront/client"
	"github.com/blogfront/blogfront/internal/views"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	idStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
	tagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printArticleList(w io.Writer, articles []client.Article) {
	if len(articles) == 0 {
		fmt.Fprintln(w, "No articles.")
		return
	}
	for _, a := range articles {
		fmt.Fprintf(w, "%s  %s", idStyle.Render(fmt.Sprintf("#%d", a.ID)), titleStyle.Render(a.Title))
		if len(a.Categories) > 0 {
			fmt.Fprintf(w, "  %s", tagStyle.Render("["+strings.Join(a.Categories, ", ")+"]"))
		}
		fmt.Fprintln(w)
		if ex := views.Excerpt(a.Content, 100); ex != "" {
			fmt.Fprintf(w, "    %s\n", ex)
		}
	}
}

func printArticle(w io.Writer, a client.Article) error {
	fmt.Fprintln(w, titleStyle.Render(a.Title))
	if len(a.Categories) > 0 {
		fmt.Fprintln(w, tagStyle.Render(strings.Join(a.Categories, " · ")))
	}
	r, err := newMarkdownRenderer(w)
	if err != nil {
		return err
	}
	body, err := r.Render(a.Content)
	if err != nil {
		return fmt.Errorf("render article body: %w", err)
	}
	_, err = io.WriteString(w, body)
	return err
}

func printCategories(w io.Writer, cats []client.Category) {
	if len(cats) == 0 {
		fmt.Fprintln(w, "No categories.")
		return
	}
	for _, c := range cats {
		if c.Count > 0 {
			fmt.Fprintf(w, "%s (%d)\n", tagStyle.Render(c.Name), c.Count)
			continue
		}
		fmt.Fprintln(w, tagStyle.Render(c.Name))
	}
}

// newMarkdownRenderer styles for the terminal only when w is one.
func newMarkdownRenderer(w io.Writer) (*glamour.TermRenderer, error) {
	style := glamour.WithStandardStyle("notty")
	if isTerminal(w) {
		style = glamour.WithAutoStyle()
	}
	return glamour.NewTermRenderer(style, glamour.WithWordWrap(80))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
