package types

import (
	"encoding/json"
	"testing"
)

func TestArticleMarshalJSON_FlattensExtra(t *testing.T) {
	t.Parallel()
	a := Article{
		ID:         7,
		Title:      "t",
		Content:    "c",
		Categories: nil,
		Extra:      map[string]json.RawMessage{"author": json.RawMessage(`"ann"`), "title": json.RawMessage(`"stale"`)},
	}
	b, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["author"] != "ann" || got["title"] != "t" {
		t.Fatalf("unexpected object: %s", b)
	}
	if cats, ok := got["categories"].([]any); !ok || len(cats) != 0 {
		t.Fatalf("categories should be an empty array: %s", b)
	}
	if v, ok := got["avatar"]; !ok || v != nil {
		t.Fatalf("avatar should be null: %s", b)
	}
}
