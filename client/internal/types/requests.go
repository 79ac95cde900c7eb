package types

// ------------------------------
// Request Types
// ------------------------------

// ArticleInput is the editor payload for creating or updating an article.
type ArticleInput struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Categories []string `json:"categories"`
}
