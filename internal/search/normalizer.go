package search

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Vietnamese function words that carry no search signal.
var stopWords = map[string]struct{}{
	"và": {}, "của": {}, "cho": {}, "với": {}, "là": {}, "một": {},
	"có": {}, "nhưng": {}, "nếu": {}, "bởi": {}, "từ": {}, "tại": {},
	"trong": {}, "để": {}, "trên": {}, "dưới": {}, "khi": {}, "các": {},
	"những": {}, "cùng": {}, "nhiều": {}, "ít": {}, "rất": {}, "đã": {},
	"sẽ": {}, "còn": {}, "đây": {}, "đó": {}, "chúng": {}, "tôi": {},
	"bạn": {}, "họ": {}, "nó": {}, "mình": {},
}

var nonWordPattern = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// Normalize lowercases text, strips punctuation, collapses whitespace and
// removes Vietnamese stop words. Total: empty input yields "".
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	lowered := strings.ToLower(text)
	cleaned := nonWordPattern.ReplaceAllString(lowered, " ")

	var kept []string
	for _, word := range strings.Fields(cleaned) {
		if _, stop := stopWords[word]; !stop {
			kept = append(kept, word)
		}
	}
	return strings.Join(kept, " ")
}

// Tokenize splits a raw query into normalized search terms. Duplicates are
// kept on purpose: repeated terms compound the score.
func Tokenize(query string) []string {
	normalized := Normalize(query)
	if normalized == "" {
		return nil
	}
	return strings.Fields(normalized)
}

// FoldDiacritics strips Vietnamese accent marks so that accented and
// unaccented spellings compare equal. đ/Đ do not decompose under NFD and
// are mapped by hand.
func FoldDiacritics(text string) string {
	if text == "" {
		return ""
	}

	decomposed := norm.NFD.String(text)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		switch r {
		case 'đ':
			b.WriteRune('d')
		case 'Đ':
			b.WriteRune('D')
		default:
			b.WriteRune(r)
		}
	}
	return strings.ToLower(b.String())
}
