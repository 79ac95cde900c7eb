package types

import (
	"encoding/json"

	"github.com/go-openapi/strfmt"
)

// ------------------------------
// Core Domain Entities
// ------------------------------

// Article is a normalized article record.
//
// Only the fields the site renders are typed. Everything else the upstream
// API sent is carried in Extra and written back unchanged by MarshalJSON, so
// a normalized record round-trips through JSON without loss.
type Article struct {
	ID         int64
	Title      string
	Content    string
	Categories []string
	// Avatar is reserved for author images; the upstream never sends one.
	Avatar *string

	CreatedAt *strfmt.DateTime
	UpdatedAt *strfmt.DateTime

	Extra map[string]json.RawMessage
}

// MarshalJSON flattens Extra into the object next to the typed fields.
// Typed fields win over Extra keys of the same name.
func (a Article) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(a.Extra)+5)
	for k, v := range a.Extra {
		out[k] = v
	}
	if a.ID != 0 {
		out["id"] = a.ID
	}
	out["title"] = a.Title
	out["content"] = a.Content
	cats := a.Categories
	if cats == nil {
		cats = []string{}
	}
	out["categories"] = cats
	out["avatar"] = a.Avatar
	return json.Marshal(out)
}

// Category is a named grouping of articles. Name doubles as the routing key.
type Category struct {
	Name  string `json:"name"`
	Count int    `json:"count,omitempty"`
}
