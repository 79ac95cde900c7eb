package webapp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/blogfront/blogfront/client"
	"github.com/blogfront/blogfront/client/errmsg"
	"github.com/blogfront/blogfront/client/normalize"
	"github.com/blogfront/blogfront/internal/router"
	"github.com/blogfront/blogfront/internal/views"
)

func (a *App) nav(v router.View) views.Nav { return views.Nav{Active: v, CanEdit: true} }

func (a *App) home(w http.ResponseWriter, r *http.Request, _ router.Props) {
	a.render(w, r, http.StatusOK, views.PageHome, views.HomePage{Nav: a.nav(router.ViewHome), Profile: a.deps.Profile})
}

func (a *App) articles(w http.ResponseWriter, r *http.Request, _ router.Props) {
	page := views.ListPage{Nav: a.nav(router.ViewArticles), Heading: "Articles"}
	a.list(w, r, page, a.deps.Articles.ArticlesWithCategories)
}

func (a *App) categoryArticles(w http.ResponseWriter, r *http.Request, p router.Props) {
	page := views.ListPage{Nav: a.nav(router.ViewCategoryArticles), Heading: p.Name, Category: p.Name}
	a.list(w, r, page, func(ctx context.Context) (json.RawMessage, error) {
		return a.deps.Categories.ArticlesByCategory(ctx, p.Name)
	})
}

// list fetches the articles and the category bar concurrently. Only the
// article fetch can fail the page; a category failure becomes a notice.
func (a *App) list(w http.ResponseWriter, r *http.Request, page views.ListPage, fetch func(context.Context) (json.RawMessage, error)) {
	var rawArticles, rawCategories json.RawMessage
	var categoriesErr error

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		rawArticles, err = fetch(ctx)
		return err
	})
	g.Go(func() error {
		rawCategories, categoriesErr = a.deps.Categories.Categories(ctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		a.fail(w, r, err, "failed to load articles")
		return
	}

	page.Articles = normalize.Articles(rawArticles, a.deps.Log)
	if categoriesErr != nil {
		page.Notice = errmsg.Message(categoriesErr, "failed to load categories")
		a.deps.Log.Warn().Err(categoriesErr).Msg("category bar unavailable")
		a.report.Report(page.Notice, zerolog.WarnLevel)
		page.Categories = []client.Category{}
	} else {
		page.Categories = normalize.Categories(rawCategories, a.deps.Log)
	}
	a.render(w, r, http.StatusOK, views.PageList, page)
}

func (a *App) articleDetail(w http.ResponseWriter, r *http.Request, p router.Props) {
	raw, err := a.deps.Articles.ArticleByID(r.Context(), strconv.FormatInt(p.ID, 10))
	if err != nil {
		a.fail(w, r, err, "failed to load article")
		return
	}
	art, ok := normalize.Article(raw, a.deps.Log)
	if !ok {
		a.errorPage(w, r, http.StatusNotFound, errmsg.MsgNotFound)
		return
	}
	a.render(w, r, http.StatusOK, views.PageDetail, views.DetailPage{Nav: a.nav(router.ViewArticleDetail), Article: art})
}

func (a *App) articleCreate(w http.ResponseWriter, r *http.Request, _ router.Props) {
	page := views.EditorPage{Nav: a.nav(router.ViewArticleCreate), Action: "/article/create"}
	if r.Method != http.MethodPost {
		a.render(w, r, http.StatusOK, views.PageEditor, page)
		return
	}

	page.Input = formInput(r)
	raw, err := a.deps.Articles.CreateArticle(r.Context(), page.Input)
	if err != nil {
		a.editorFailed(w, r, page, err)
		return
	}
	a.redirectToArticle(w, r, raw, "")
}

func (a *App) articleEdit(w http.ResponseWriter, r *http.Request, p router.Props) {
	page := views.EditorPage{Nav: a.nav(router.ViewArticleEdit), ID: p.EditID, Action: "/article/edit/" + url.PathEscape(p.EditID)}

	if r.Method != http.MethodPost {
		raw, err := a.deps.Articles.ArticleByID(r.Context(), p.EditID)
		if err != nil {
			a.fail(w, r, err, "failed to load article")
			return
		}
		art, ok := normalize.Article(raw, a.deps.Log)
		if !ok {
			a.errorPage(w, r, http.StatusNotFound, errmsg.MsgNotFound)
			return
		}
		page.Input = client.ArticleInput{Title: art.Title, Content: art.Content, Categories: art.Categories}
		a.render(w, r, http.StatusOK, views.PageEditor, page)
		return
	}

	page.Input = formInput(r)
	raw, err := a.deps.Articles.UpdateArticle(r.Context(), p.EditID, page.Input)
	if err != nil {
		a.editorFailed(w, r, page, err)
		return
	}
	a.redirectToArticle(w, r, raw, p.EditID)
}

// editorFailed re-renders the form with the submitted values and the
// normalized error message.
func (a *App) editorFailed(w http.ResponseWriter, r *http.Request, page views.EditorPage, err error) {
	if r.Context().Err() != nil {
		return
	}
	status := http.StatusBadRequest
	if !errors.Is(err, client.ErrInvalidArticle) {
		status = statusFor(err)
		a.deps.Log.Error().Err(err).Str("path", r.URL.Path).Msg("article save failed")
	}
	page.Error = errmsg.Message(err, "failed to save article")
	a.report.Report(page.Error, zerolog.WarnLevel)
	a.render(w, r, status, views.PageEditor, page)
}

// redirectToArticle sends the browser to the saved article. The id comes from
// the upstream response, else fallbackID, else the list.
func (a *App) redirectToArticle(w http.ResponseWriter, r *http.Request, raw json.RawMessage, fallbackID string) {
	target := "/articles"
	if art, ok := normalize.Article(raw, a.deps.Log); ok && art.ID != 0 {
		target = router.ArticlePath(art.ID)
	} else if id, err := strconv.ParseInt(fallbackID, 10, 64); err == nil {
		target = router.ArticlePath(id)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// formInput reads the editor form. Categories are comma separated; empty
// entries are dropped.
func formInput(r *http.Request) client.ArticleInput {
	_ = r.ParseForm()
	in := client.ArticleInput{
		Title:      strings.TrimSpace(r.PostFormValue("title")),
		Content:    r.PostFormValue("content"),
		Categories: []string{},
	}
	for _, c := range strings.Split(r.PostFormValue("categories"), ",") {
		if c = strings.TrimSpace(c); c != "" {
			in.Categories = append(in.Categories, c)
		}
	}
	return in
}
