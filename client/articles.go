package client

import (
	"context"
	"encoding/json"
)

const (
	pathArticlesWithCategories = "/api/categories/articles-with-categories"
	pathArticles               = "/api/articles"
	pathArticle                = "/api/articles/{id}"
)

// ArticleService exposes the article endpoints. Methods only build paths;
// they return the raw response body and leave normalization to the caller.
type ArticleService struct {
	c *Client
}

// NewArticleService returns an ArticleService backed by c.
func NewArticleService(c *Client) *ArticleService { return &ArticleService{c: c} }

// ArticlesWithCategories fetches every article together with its categories.
func (s *ArticleService) ArticlesWithCategories(ctx context.Context) (json.RawMessage, error) {
	resp, err := s.c.Get(ctx, pathArticlesWithCategories, nil)
	if err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

// ArticleByID fetches a single article. The id is placed in the path as given.
func (s *ArticleService) ArticleByID(ctx context.Context, id string) (json.RawMessage, error) {
	resp, err := s.c.Get(ctx, pathArticle, map[string]string{"id": id})
	if err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

// CreateArticle submits a new article from the editor.
func (s *ArticleService) CreateArticle(ctx context.Context, in ArticleInput) (json.RawMessage, error) {
	if err := ValidateArticleInput(in); err != nil {
		return nil, err
	}
	resp, err := s.c.Post(ctx, pathArticles, nil, in)
	if err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

// UpdateArticle replaces an existing article from the editor.
func (s *ArticleService) UpdateArticle(ctx context.Context, id string, in ArticleInput) (json.RawMessage, error) {
	if err := ValidateArticleInput(in); err != nil {
		return nil, err
	}
	resp, err := s.c.Put(ctx, pathArticle, map[string]string{"id": id}, in)
	if err != nil {
		return nil, err
	}
	return resp.Body(), nil
}
