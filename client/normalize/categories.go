package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/blogfront/blogfront/client"
)

// CategoriesShape names the wire shapes seen for an article's categories.
type CategoriesShape int

const (
	// ShapeAbsent: missing, null, false, 0 or "".
	ShapeAbsent CategoriesShape = iota
	// ShapeList: a JSON array.
	ShapeList
	// ShapeEncodedList: a string holding a JSON array, e.g. "[\"a\",\"b\"]".
	ShapeEncodedList
	// ShapeText: a string that is not a JSON array; it names one category.
	ShapeText
	// ShapeScalar: any other truthy value.
	ShapeScalar
)

func (s CategoriesShape) String() string {
	switch s {
	case ShapeAbsent:
		return "absent"
	case ShapeList:
		return "list"
	case ShapeEncodedList:
		return "encoded-list"
	case ShapeText:
		return "text"
	case ShapeScalar:
		return "scalar"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// ParseCategories classifies raw and returns its canonical form, which is
// never nil. The error is non-nil only for ShapeText and carries the JSON
// parse failure that made the string count as a single name.
func ParseCategories(raw json.RawMessage) (CategoriesShape, []string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ShapeAbsent, []string{}, nil
	}

	switch raw[0] {
	case 'n':
		return ShapeAbsent, []string{}, nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return ShapeScalar, []string{string(raw)}, nil
		}
		return ShapeList, listText(items), nil
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ShapeScalar, []string{string(raw)}, nil
		}
		if s == "" {
			return ShapeAbsent, []string{}, nil
		}
		var items []json.RawMessage
		if err := json.Unmarshal([]byte(s), &items); err != nil {
			return ShapeText, []string{s}, err
		}
		return ShapeEncodedList, listText(items), nil
	case 't':
		return ShapeScalar, []string{"true"}, nil
	case 'f':
		return ShapeAbsent, []string{}, nil
	case '{':
		return ShapeScalar, []string{elementText(raw)}, nil
	default:
		if f, err := strconv.ParseFloat(string(raw), 64); err == nil && f == 0 {
			return ShapeAbsent, []string{}, nil
		}
		return ShapeScalar, []string{string(raw)}, nil
	}
}

func listText(items []json.RawMessage) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) == 0 || bytes.Equal(item, []byte("null")) {
			continue
		}
		out = append(out, elementText(item))
	}
	return out
}

// elementText renders one list element as a category name: strings as-is,
// objects by their "name", anything else as compact JSON.
func elementText(item json.RawMessage) string {
	switch item[0] {
	case '"':
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			return s
		}
	case '{':
		var obj struct {
			Name *string `json:"name"`
		}
		if err := json.Unmarshal(item, &obj); err == nil && obj.Name != nil {
			return *obj.Name
		}
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, item); err != nil {
		return string(item)
	}
	return buf.String()
}

// Categories normalizes the category listing. Elements may be plain names or
// objects with a "name" and optional "count"; anything else is skipped.
// A non-array input yields an empty slice.
func Categories(raw json.RawMessage, log zerolog.Logger) []client.Category {
	var items []json.RawMessage
	if !isArray(raw) || json.Unmarshal(raw, &items) != nil {
		return []client.Category{}
	}

	out := make([]client.Category, 0, len(items))
	for i, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) == 0 {
			continue
		}
		switch item[0] {
		case '"':
			var name string
			if err := json.Unmarshal(item, &name); err == nil && name != "" {
				out = append(out, client.Category{Name: name})
				continue
			}
		case '{':
			var cat client.Category
			if err := json.Unmarshal(item, &cat); err == nil && cat.Name != "" {
				out = append(out, cat)
				continue
			}
		}
		log.Debug().Int("index", i).RawJSON("value", item).Msg("skipping unrecognized category")
	}
	return out
}

func isArray(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '['
}
