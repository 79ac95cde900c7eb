package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

type seenRequest struct {
	method string
	path   string
	body   string
}

func recordingServer(t *testing.T, status int, reply string) (*httptest.Server, func() []seenRequest) {
	t.Helper()
	var mu sync.Mutex
	var seen []seenRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		seen = append(seen, seenRequest{method: r.Method, path: r.URL.EscapedPath(), body: string(b)})
		mu.Unlock()
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)
	return srv, func() []seenRequest {
		mu.Lock()
		defer mu.Unlock()
		return append([]seenRequest(nil), seen...)
	}
}

func TestServices_Paths(t *testing.T) {
	t.Parallel()
	input := ArticleInput{Title: "T", Content: "C", Categories: []string{"go"}}
	tests := []struct {
		name       string
		call       func(ctx context.Context, a *ArticleService, cs *CategoryService) (json.RawMessage, error)
		wantMethod string
		wantPath   string
	}{
		{"articles with categories", func(ctx context.Context, a *ArticleService, _ *CategoryService) (json.RawMessage, error) {
			return a.ArticlesWithCategories(ctx)
		}, http.MethodGet, "/api/categories/articles-with-categories"},
		{"article by id", func(ctx context.Context, a *ArticleService, _ *CategoryService) (json.RawMessage, error) {
			return a.ArticleByID(ctx, "42")
		}, http.MethodGet, "/api/articles/42"},
		{"article by non-numeric id", func(ctx context.Context, a *ArticleService, _ *CategoryService) (json.RawMessage, error) {
			return a.ArticleByID(ctx, "abc")
		}, http.MethodGet, "/api/articles/abc"},
		{"article id is escaped", func(ctx context.Context, a *ArticleService, _ *CategoryService) (json.RawMessage, error) {
			return a.ArticleByID(ctx, "1 2")
		}, http.MethodGet, "/api/articles/1%202"},
		{"create", func(ctx context.Context, a *ArticleService, _ *CategoryService) (json.RawMessage, error) {
			return a.CreateArticle(ctx, input)
		}, http.MethodPost, "/api/articles"},
		{"update", func(ctx context.Context, a *ArticleService, _ *CategoryService) (json.RawMessage, error) {
			return a.UpdateArticle(ctx, "7", input)
		}, http.MethodPut, "/api/articles/7"},
		{"categories", func(ctx context.Context, _ *ArticleService, cs *CategoryService) (json.RawMessage, error) {
			return cs.Categories(ctx)
		}, http.MethodGet, "/api/categories"},
		{"articles by category", func(ctx context.Context, _ *ArticleService, cs *CategoryService) (json.RawMessage, error) {
			return cs.ArticlesByCategory(ctx, "go")
		}, http.MethodGet, "/api/categories/go/articles"},
		{"category name is escaped", func(ctx context.Context, _ *ArticleService, cs *CategoryService) (json.RawMessage, error) {
			return cs.ArticlesByCategory(ctx, "a/b c")
		}, http.MethodGet, "/api/categories/a%2Fb%20c/articles"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv, seen := recordingServer(t, http.StatusOK, `{"ok":true}`)
			c := newTestClient(t, srv.URL)
			body, err := tt.call(context.Background(), NewArticleService(c), NewCategoryService(c))
			if err != nil {
				t.Fatalf("call: %v", err)
			}
			if string(body) != `{"ok":true}` {
				t.Fatalf("body = %s, want raw upstream body", body)
			}
			got := seen()
			if len(got) != 1 || got[0].method != tt.wantMethod || got[0].path != tt.wantPath {
				t.Fatalf("requests = %+v, want %s %s", got, tt.wantMethod, tt.wantPath)
			}
		})
	}
}

func TestCreateArticle_SendsInputAsJSON(t *testing.T) {
	t.Parallel()
	srv, seen := recordingServer(t, http.StatusCreated, `{"id":1}`)
	c := newTestClient(t, srv.URL)
	in := ArticleInput{Title: "Hello", Content: "Body", Categories: []string{"go", "web"}}
	if _, err := NewArticleService(c).CreateArticle(context.Background(), in); err != nil {
		t.Fatalf("CreateArticle: %v", err)
	}
	var sent ArticleInput
	if err := json.Unmarshal([]byte(seen()[0].body), &sent); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if sent.Title != in.Title || sent.Content != in.Content || len(sent.Categories) != 2 {
		t.Fatalf("sent = %+v", sent)
	}
}

func TestCreateArticle_InvalidInputNeverSent(t *testing.T) {
	t.Parallel()
	srv, seen := recordingServer(t, http.StatusOK, `{}`)
	c := newTestClient(t, srv.URL)
	_, err := NewArticleService(c).CreateArticle(context.Background(), ArticleInput{Content: "no title"})
	if !errors.Is(err, ErrInvalidArticle) {
		t.Fatalf("expected ErrInvalidArticle, got %v", err)
	}
	_, err = NewArticleService(c).UpdateArticle(context.Background(), "1", ArticleInput{Title: "no content"})
	if !errors.Is(err, ErrInvalidArticle) {
		t.Fatalf("expected ErrInvalidArticle, got %v", err)
	}
	if n := len(seen()); n != 0 {
		t.Fatalf("expected no upstream calls, got %d", n)
	}
}

func TestServices_PropagateResponseError(t *testing.T) {
	t.Parallel()
	srv, _ := recordingServer(t, http.StatusNotFound, `{"message":"missing"}`)
	c := newTestClient(t, srv.URL)
	_, err := NewArticleService(c).ArticleByID(context.Background(), "9")
	if !IsNotFound(err) {
		t.Fatalf("expected 404 ResponseError, got %v", err)
	}
	var respErr *ResponseError
	if !errors.As(err, &respErr) || respErr.ServerMessage() != "missing" {
		t.Fatalf("server message not preserved: %v", err)
	}
	if status, ok := StatusCode(err); !ok || status != http.StatusNotFound {
		t.Fatalf("StatusCode = %d, %v", status, ok)
	}
}
