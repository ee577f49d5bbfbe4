// Package htmlx turns HTML-bearing description fields into plain text for
// excerpts. It has no DOM or browser dependency.
package htmlx

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// skipped elements never contribute text.
var skipped = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"iframe":   true,
}

// block elements are separated from their neighbours by a space so that
// "<p>a</p><p>b</p>" reads "a b", not "ab".
var block = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "section": true, "article": true, "tr": true, "td": true, "th": true,
}

// StripTags returns the text content of s with tags removed, entities
// decoded and whitespace collapsed to single spaces.
// Malformed markup is tolerated the way a browser would tolerate it.
func StripTags(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return collapse(s)
	}

	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	depth := 0

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// io.EOF or a tokenizer error; keep what was read so far.
			return collapse(b.String())
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if skipped[tag] && tt == html.StartTagToken {
				depth++
			}
			if block[tag] {
				b.WriteByte(' ')
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if skipped[tag] && depth > 0 {
				depth--
			}
			if block[tag] {
				b.WriteByte(' ')
			}
		case html.TextToken:
			if depth == 0 {
				b.Write(z.Text())
			}
		}
	}
}

// Excerpt strips s and truncates the result to at most n runes, cutting on
// a word boundary when possible and appending "…" when text was dropped.
// n <= 0 disables truncation.
func Excerpt(s string, n int) string {
	text := StripTags(s)
	if n <= 0 || utf8.RuneCountInString(text) <= n {
		return text
	}

	runes := []rune(text)
	cut := string(runes[:n])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimSpace(cut) + "…"
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
