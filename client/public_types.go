package client

import "github.com/blogfront/blogfront/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Domain entities
	Article  = types.Article
	Category = types.Category

	// Requests
	ArticleInput = types.ArticleInput
)

// ErrInvalidArticle wraps every editor validation failure.
var ErrInvalidArticle = types.ErrInvalidArticle

// ValidateArticleInput checks an editor payload before it is sent upstream.
func ValidateArticleInput(in ArticleInput) error { return types.ValidateArticleInput(in) }
