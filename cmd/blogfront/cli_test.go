package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func stubAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/categories/articles-with-categories", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id":1,"title":"First post","content":"<p>Hello there</p>","categories":"[\"go\"]"},
			{"id":2,"title":"Second post","content":"plain","categories":null}
		]`))
	})
	mux.HandleFunc("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"name":"go","count":1},"web"]`))
	})
	mux.HandleFunc("/api/categories/{name}/articles", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("name") != "a/b" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`[{"id":3,"title":"Slashed","categories":["a/b"]}]`))
	})
	mux.HandleFunc("/api/articles/7", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":7,"title":"Seven","content":"# Heading\n\nSome *markdown* body.","categories":["go","web"]}`))
	})
	mux.HandleFunc("/api/articles/404", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	b := &strings.Builder{}
	root := NewRootCmd()
	root.SetOut(b)
	root.SetArgs(args)
	err := root.Execute()
	return b.String(), err
}

func TestCLI_Articles(t *testing.T) {
	srv := stubAPI(t)
	out, err := run(t, "--api-url", srv.URL, "articles")
	if err != nil {
		t.Fatalf("articles cmd failed: %v", err)
	}
	for _, want := range []string{"#1", "First post", "[go]", "Hello there", "#2", "Second post"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCLI_ArticlesByCategoryJSON(t *testing.T) {
	srv := stubAPI(t)
	out, err := run(t, "--api-url", srv.URL, "--json", "articles", "--category", "a/b")
	if err != nil {
		t.Fatalf("articles --category failed: %v", err)
	}
	var got []map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(got) != 1 || got[0]["title"] != "Slashed" {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if cats, _ := got[0]["categories"].([]any); len(cats) != 1 || cats[0] != "a/b" {
		t.Fatalf("categories = %v", got[0]["categories"])
	}
}

func TestCLI_Article(t *testing.T) {
	srv := stubAPI(t)
	out, err := run(t, "--api-url", srv.URL, "article", "7")
	if err != nil {
		t.Fatalf("article cmd failed: %v", err)
	}
	for _, want := range []string{"Seven", "go · web", "Heading", "markdown"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCLI_ArticleNotFound(t *testing.T) {
	srv := stubAPI(t)
	_, err := run(t, "--api-url", srv.URL, "article", "404")
	if err == nil || err.Error() != "resource not found" {
		t.Fatalf("expected resource not found, got %v", err)
	}
}

func TestCLI_ArticleRequiresID(t *testing.T) {
	if _, err := run(t, "article"); err == nil {
		t.Fatal("expected argument error")
	}
}

func TestCLI_Categories(t *testing.T) {
	srv := stubAPI(t)
	out, err := run(t, "--api-url", srv.URL, "categories")
	if err != nil {
		t.Fatalf("categories cmd failed: %v", err)
	}
	if !strings.Contains(out, "go (1)") || !strings.Contains(out, "web") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestCLI_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	_, err := run(t, "--api-url", url, "categories")
	if err == nil || err.Error() != "network connection failed" {
		t.Fatalf("expected network connection failed, got %v", err)
	}
}

func TestUserError_ReportsOutsideProduction(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	for _, env := range []string{"development", "production"} {
		var buf bytes.Buffer
		log.Logger = zerolog.New(&buf)
		t.Setenv("BLOGFRONT_ENVIRONMENT", env)

		err := userError(errors.New("boom"), "failed to load articles")
		if err == nil || err.Error() != "boom" {
			t.Fatalf("%s: unexpected error %v", env, err)
		}
		reported := strings.Contains(buf.String(), `"kind":"api"`)
		if reported != (env != "production") {
			t.Fatalf("%s: reported=%v, log=%q", env, reported, buf.String())
		}
	}
}
