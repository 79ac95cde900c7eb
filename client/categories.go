package client

import (
	"context"
	"encoding/json"
)

const (
	pathCategories       = "/api/categories"
	pathCategoryArticles = "/api/categories/{categoryName}/articles"
)

// CategoryService exposes the category endpoints.
type CategoryService struct {
	c *Client
}

// NewCategoryService returns a CategoryService backed by c.
func NewCategoryService(c *Client) *CategoryService { return &CategoryService{c: c} }

// Categories fetches every category.
func (s *CategoryService) Categories(ctx context.Context) (json.RawMessage, error) {
	resp, err := s.c.Get(ctx, pathCategories, nil)
	if err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

// ArticlesByCategory fetches the articles filed under name. The name is
// percent-encoded as a single path segment.
func (s *CategoryService) ArticlesByCategory(ctx context.Context, name string) (json.RawMessage, error) {
	resp, err := s.c.Get(ctx, pathCategoryArticles, map[string]string{"categoryName": name})
	if err != nil {
		return nil, err
	}
	return resp.Body(), nil
}
