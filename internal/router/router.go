// Package router holds the site's route table: which URL patterns map to
// which views, and how path parameters become typed props.
package router

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
)

// View names a page of the site.
type View string

const (
	ViewHome             View = "Home"
	ViewArticles         View = "Articles"
	ViewArticleDetail    View = "ArticleDetail"
	ViewCategoryArticles View = "CategoryArticles"
	ViewArticleCreate    View = "ArticleCreate"
	ViewArticleEdit      View = "ArticleEdit"
)

// Props are the typed path parameters handed to a view.
type Props struct {
	// ID is the numeric article id on the detail view.
	ID int64
	// EditID is the article id on the edit view, passed through unparsed.
	EditID string
	// Name is the percent-decoded category name.
	Name string
}

// Route is one entry of the table. A route with Redirect set has no view.
type Route struct {
	View     View
	Path     string
	Redirect string
	Methods  []string
	Props    func(vars map[string]string) (Props, error)
}

// Handler renders a view.
type Handler func(w http.ResponseWriter, r *http.Request, p Props)

var readOnly = []string{http.MethodGet, http.MethodHead}
var editable = []string{http.MethodGet, http.MethodHead, http.MethodPost}

// Table returns the route table in registration order.
func Table() []Route {
	return []Route{
		{Path: "/", Redirect: "/about", Methods: readOnly},
		{View: ViewHome, Path: "/about", Methods: readOnly},
		{View: ViewArticles, Path: "/articles", Methods: readOnly},
		{View: ViewArticleCreate, Path: "/article/create", Methods: editable},
		{View: ViewArticleDetail, Path: "/article/{id:[0-9]+}", Methods: readOnly, Props: detailProps},
		{View: ViewCategoryArticles, Path: "/category/{name}", Methods: readOnly, Props: categoryProps},
		{View: ViewArticleEdit, Path: "/article/edit/{id}", Methods: editable, Props: editProps},
	}
}

func detailProps(vars map[string]string) (Props, error) {
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		return Props{}, fmt.Errorf("article id %q: %w", vars["id"], err)
	}
	return Props{ID: id}, nil
}

func categoryProps(vars map[string]string) (Props, error) {
	name, err := url.PathUnescape(vars["name"])
	if err != nil {
		return Props{}, fmt.Errorf("category name %q: %w", vars["name"], err)
	}
	return Props{Name: name}, nil
}

func editProps(vars map[string]string) (Props, error) {
	id, err := url.PathUnescape(vars["id"])
	if err != nil {
		return Props{}, fmt.Errorf("article id %q: %w", vars["id"], err)
	}
	return Props{EditID: id}, nil
}

// Build registers every route of Table on a new mux.Router. Each view in the
// table needs a handler. Paths are matched in their encoded form so that a
// category name containing "/" stays one segment.
func Build(handlers map[View]Handler) (*mux.Router, error) {
	r := mux.NewRouter().UseEncodedPath()
	for _, route := range Table() {
		if route.Redirect != "" {
			r.Handle(route.Path, http.RedirectHandler(route.Redirect, http.StatusFound)).Methods(route.Methods...)
			continue
		}
		h, ok := handlers[route.View]
		if !ok {
			return nil, fmt.Errorf("no handler for view %s", route.View)
		}
		r.HandleFunc(route.Path, viewHandler(route, h)).Methods(route.Methods...).Name(string(route.View))
	}
	return r, nil
}

func viewHandler(route Route, h Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		var p Props
		if route.Props != nil {
			var err error
			if p, err = route.Props(mux.Vars(req)); err != nil {
				http.NotFound(w, req)
				return
			}
		}
		h(w, req, p)
	}
}

// ArticlePath links to an article's detail view.
func ArticlePath(id int64) string { return "/article/" + strconv.FormatInt(id, 10) }

// EditPath links to the editor for an article.
func EditPath(id int64) string { return "/article/edit/" + strconv.FormatInt(id, 10) }

// CategoryPath links to a category's article list.
func CategoryPath(name string) string { return "/category/" + url.PathEscape(name) }
