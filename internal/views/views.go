// Package views renders the site's HTML pages from embedded templates.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/blogfront/blogfront/client"
	"github.com/blogfront/blogfront/internal/router"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page template names.
const (
	PageHome     = "home"
	PageList     = "list"
	PageDetail   = "detail"
	PageEditor   = "editor"
	PageError    = "error"
	layoutFile   = "templates/layout.html"
	templateGlob = "templates/*.html"
)

// Nav is the site navigation shared by every page.
type Nav struct {
	Active  router.View
	CanEdit bool
}

// HomePage is the about view.
type HomePage struct {
	Nav
	Profile Profile
}

// ListPage lists articles, optionally filtered to one category.
type ListPage struct {
	Nav
	Heading    string
	Category   string
	Articles   []client.Article
	Categories []client.Category
	// Notice is a non-fatal error shown above the list.
	Notice string
}

// DetailPage shows one article.
type DetailPage struct {
	Nav
	Article client.Article
}

// EditorPage is the create/edit form.
type EditorPage struct {
	Nav
	// ID is empty when creating.
	ID     string
	Action string
	Input  client.ArticleInput
	Error  string
}

// CategoriesText joins the input categories for the form field.
func (p EditorPage) CategoriesText() string { return strings.Join(p.Input.Categories, ", ") }

// ErrorPage reports a failed fetch.
type ErrorPage struct {
	Nav
	Status  int
	Message string
}

// Renderer executes page templates. It is safe for concurrent use.
type Renderer struct {
	pages map[string]*template.Template
	icons *IconRegistry
}

// New parses every page template against the shared layout.
func New(icons *IconRegistry) (*Renderer, error) {
	if icons == nil {
		icons = DefaultIcons()
	}
	r := &Renderer{pages: map[string]*template.Template{}, icons: icons}

	funcs := template.FuncMap{
		"icon":         icons.SVG,
		"articlePath":  router.ArticlePath,
		"editPath":     router.EditPath,
		"categoryPath": router.CategoryPath,
		"excerpt":      func(body string) string { return Excerpt(body, DefaultExcerptLength) },
		"date":         formatDate,
	}

	files, err := fs.Glob(templateFS, templateGlob)
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if f == layoutFile {
			continue
		}
		name := strings.TrimSuffix(path.Base(f), ".html")
		t, err := template.New(path.Base(layoutFile)).Funcs(funcs).ParseFS(templateFS, layoutFile, f)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render writes page to w. Output is buffered so a template error never
// leaves a half-written page.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func formatDate(dt *strfmt.DateTime) string {
	if dt == nil {
		return ""
	}
	return time.Time(*dt).Format("2006-01-02")
}
