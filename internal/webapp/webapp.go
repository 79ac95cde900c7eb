// Package webapp is the composition root of the site: it wires the API
// client, view handlers, the /api proxy and the operational endpoints into
// one http.Handler.
package webapp

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/blogfront/blogfront/client"
	"github.com/blogfront/blogfront/client/errmsg"
	"github.com/blogfront/blogfront/internal/health"
	"github.com/blogfront/blogfront/internal/router"
	"github.com/blogfront/blogfront/internal/views"
)

// Deps are the values the site is built from.
type Deps struct {
	Client     *client.Client
	Articles   *client.ArticleService
	Categories *client.CategoryService
	Views      *views.Renderer
	Profile    views.Profile

	// Health backs /healthz. Optional.
	Health   *health.ServiceHealthChecker
	Upstream *health.UpstreamHealthChecker

	// ProxyAPI mounts a reverse proxy to the client's base URL on /api/.
	ProxyAPI bool
	// Production silences the development echo of displayed messages.
	Production bool
	Log        zerolog.Logger
}

// App serves the site.
type App struct {
	deps    Deps
	report  errmsg.Reporter
	handler http.Handler
}

// New validates deps and builds the routes.
func New(d Deps) (*App, error) {
	if d.Client == nil || d.Articles == nil || d.Categories == nil || d.Views == nil {
		return nil, errors.New("webapp: client, services and views are required")
	}
	a := &App{deps: d, report: errmsg.NewReporter(d.Log, d.Production)}

	root, err := router.Build(map[router.View]router.Handler{
		router.ViewHome:             a.home,
		router.ViewArticles:         a.articles,
		router.ViewArticleDetail:    a.articleDetail,
		router.ViewCategoryArticles: a.categoryArticles,
		router.ViewArticleCreate:    a.articleCreate,
		router.ViewArticleEdit:      a.articleEdit,
	})
	if err != nil {
		return nil, err
	}
	root.Use(a.recoverPanics, instrument)

	root.HandleFunc("/healthz", a.healthz).Methods(http.MethodGet)
	root.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	if d.ProxyAPI {
		proxy, err := newAPIProxy(d.Client.BaseURL(), d.Log)
		if err != nil {
			return nil, err
		}
		root.PathPrefix("/api/").Handler(proxy)
	}
	root.NotFoundHandler = http.HandlerFunc(a.notFound)

	a.handler = root
	return a, nil
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) { a.handler.ServeHTTP(w, r) }

// Router exposes the underlying mux for callers that add routes.
func (a *App) Router() *mux.Router { return a.handler.(*mux.Router) }
