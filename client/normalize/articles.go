// Package normalize coerces upstream article and category payloads into one
// canonical shape before they are rendered.
package normalize

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/go-openapi/strfmt"
	"github.com/rs/zerolog"

	"github.com/blogfront/blogfront/client"
)

var errNotObject = errors.New("article record is not a JSON object")

// Articles normalizes a list of raw article records. Input that is not a JSON
// array yields an empty, non-nil slice. Elements that are not objects are
// skipped and logged.
//
// Applying Articles to the JSON encoding of its own output returns the same
// articles.
func Articles(raw json.RawMessage, log zerolog.Logger) []client.Article {
	var items []json.RawMessage
	if !isArray(raw) || json.Unmarshal(raw, &items) != nil {
		return []client.Article{}
	}

	out := make([]client.Article, 0, len(items))
	for i, item := range items {
		a, err := record(item, log.With().Int("index", i).Logger())
		if err != nil {
			log.Warn().Err(err).Int("index", i).Msg("skipping article record")
			continue
		}
		out = append(out, a)
	}
	return out
}

// Article normalizes a single record. A JSON array yields its first element.
// ok is false when raw holds no usable record.
func Article(raw json.RawMessage, log zerolog.Logger) (client.Article, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return client.Article{}, false
	}
	switch raw[0] {
	case '[':
		list := Articles(raw, log)
		if len(list) == 0 {
			return client.Article{}, false
		}
		return list[0], true
	case '{':
		a, err := record(raw, log)
		if err != nil {
			log.Warn().Err(err).Msg("unusable article record")
			return client.Article{}, false
		}
		return a, true
	default:
		return client.Article{}, false
	}
}

func record(item json.RawMessage, log zerolog.Logger) (client.Article, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(item, &fields); err != nil || fields == nil {
		return client.Article{}, errNotObject
	}

	var a client.Article
	if v, ok := fields["id"]; ok {
		if id, ok := parseID(v); ok {
			a.ID = id
			delete(fields, "id")
		}
	}
	if v, ok := take(fields, "title"); ok {
		a.Title = text(v)
	}
	if v, ok := take(fields, "content"); ok {
		a.Content = text(v)
	} else if v, ok := take(fields, "body"); ok {
		a.Content = text(v)
	}

	raw, _ := take(fields, "categories")
	shape, cats, err := ParseCategories(raw)
	if err != nil {
		log.Debug().Err(err).Str("shape", shape.String()).Msg("categories string is not a JSON array; using it as one name")
	}
	a.Categories = cats

	delete(fields, "avatar")
	a.Avatar = nil

	a.CreatedAt = timestamp(fields, log, "createdAt", "created_at")
	a.UpdatedAt = timestamp(fields, log, "updatedAt", "updated_at")

	for k, v := range fields {
		var buf bytes.Buffer
		if err := json.Compact(&buf, v); err == nil {
			fields[k] = buf.Bytes()
		}
	}
	a.Extra = fields
	return a, nil
}

func take(fields map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	v, ok := fields[key]
	if ok {
		delete(fields, key)
	}
	return v, ok
}

// parseID accepts integer ids sent as numbers or numeric strings.
func parseID(v json.RawMessage) (int64, bool) {
	var n json.Number
	if err := json.Unmarshal(v, &n); err == nil {
		if id, err := n.Int64(); err == nil {
			return id, true
		}
		return 0, false
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		if id, err := strconv.ParseInt(s, 10, 64); err == nil {
			return id, true
		}
	}
	return 0, false
}

// text renders a JSON value as display text: strings unquoted, null empty,
// anything else compact JSON.
func text(v json.RawMessage) string {
	v = bytes.TrimSpace(v)
	if len(v) == 0 || bytes.Equal(v, []byte("null")) {
		return ""
	}
	return elementText(v)
}

// timestamp parses the first present key. The raw value stays in fields so
// the record re-encodes with its original key and format.
func timestamp(fields map[string]json.RawMessage, log zerolog.Logger, keys ...string) *strfmt.DateTime {
	for _, key := range keys {
		v, ok := fields[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(v, &s); err != nil || s == "" {
			return nil
		}
		dt, err := strfmt.ParseDateTime(s)
		if err != nil {
			log.Debug().Err(err).Str("field", key).Str("value", s).Msg("unparseable timestamp")
			return nil
		}
		return &dt
	}
	return nil
}
