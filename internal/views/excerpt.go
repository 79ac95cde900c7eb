package views

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// DefaultExcerptLength is the rune budget for list-page excerpts.
const DefaultExcerptLength = 160

// Excerpt returns the visible text of an article body, whitespace collapsed
// and cut to at most max runes plus an ellipsis. Bodies may be HTML or plain
// text; script and style content is dropped.
func Excerpt(body string, max int) string {
	if max <= 0 {
		max = DefaultExcerptLength
	}
	text := plainText(body)
	if utf8.RuneCountInString(text) <= max {
		return text
	}
	runes := []rune(text)
	cut := strings.TrimRight(string(runes[:max]), " ")
	return cut + "…"
}

func plainText(body string) string {
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return strings.Join(strings.Fields(body), " ")
	}
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return strings.Join(strings.Fields(sb.String()), " ")
}
