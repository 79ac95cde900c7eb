package normalize

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/blogfront/blogfront/client"
)

func TestParseCategories(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		raw     string
		shape   CategoriesShape
		want    []string
		wantErr bool
	}{
		{name: "missing", raw: ``, shape: ShapeAbsent, want: []string{}},
		{name: "null", raw: `null`, shape: ShapeAbsent, want: []string{}},
		{name: "false", raw: `false`, shape: ShapeAbsent, want: []string{}},
		{name: "zero", raw: `0`, shape: ShapeAbsent, want: []string{}},
		{name: "empty string", raw: `""`, shape: ShapeAbsent, want: []string{}},
		{name: "whitespace string", raw: `"  "`, shape: ShapeText, want: []string{"  "}, wantErr: true},
		{name: "list", raw: `["a","b"]`, shape: ShapeList, want: []string{"a", "b"}},
		{name: "empty list", raw: `[]`, shape: ShapeList, want: []string{}},
		{name: "list of objects", raw: `[{"name":"go"},{"id":3}]`, shape: ShapeList, want: []string{"go", `{"id":3}`}},
		{name: "list with null and number", raw: `["a",null,7]`, shape: ShapeList, want: []string{"a", "7"}},
		{name: "encoded list", raw: `"[\"a\",\"b\"]"`, shape: ShapeEncodedList, want: []string{"a", "b"}},
		{name: "plain text", raw: `"not json"`, shape: ShapeText, want: []string{"not json"}, wantErr: true},
		{name: "encoded scalar", raw: `"5"`, shape: ShapeText, want: []string{"5"}, wantErr: true},
		{name: "number", raw: `12`, shape: ShapeScalar, want: []string{"12"}},
		{name: "true", raw: `true`, shape: ShapeScalar, want: []string{"true"}},
		{name: "object", raw: `{"name":"rust"}`, shape: ShapeScalar, want: []string{"rust"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, got, err := ParseCategories(json.RawMessage(tt.raw))
			if shape != tt.shape {
				t.Errorf("shape = %v, want %v", shape, tt.shape)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("categories mismatch (-want +got):\n%s", diff)
			}
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCategoriesShapeString(t *testing.T) {
	t.Parallel()
	if ShapeEncodedList.String() != "encoded-list" || CategoriesShape(99).String() != "unknown(99)" {
		t.Fatalf("unexpected shape names")
	}
}

func TestCategories(t *testing.T) {
	t.Parallel()
	raw := json.RawMessage(`["go", {"name":"rust","count":3}, {"count":1}, 5, ""]`)
	want := []client.Category{{Name: "go"}, {Name: "rust", Count: 3}}
	if diff := cmp.Diff(want, Categories(raw, zerolog.Nop())); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}

	got := Categories(json.RawMessage(`{"categories":[]}`), zerolog.Nop())
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
