package types

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxTitleLength bounds article titles accepted by the editor.
const MaxTitleLength = 200

// ErrInvalidArticle wraps every editor validation failure.
var ErrInvalidArticle = errors.New("invalid article")

// ValidateArticleInput checks the editor payload before it is sent upstream.
func ValidateArticleInput(in ArticleInput) error {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidArticle)
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return fmt.Errorf("%w: title must be at most %d characters", ErrInvalidArticle, MaxTitleLength)
	}
	if strings.TrimSpace(in.Content) == "" {
		return fmt.Errorf("%w: content is required", ErrInvalidArticle)
	}
	for _, c := range in.Categories {
		if strings.TrimSpace(c) == "" {
			return fmt.Errorf("%w: category names must not be blank", ErrInvalidArticle)
		}
	}
	return nil
}
