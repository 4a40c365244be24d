// Package search builds results-page URLs from the search box input and
// hands them to a Navigator.
package search

import (
	"strings"
	"unicode"
)

// Target returns the results-page URL for a raw search input. ok is false
// when the input is empty after trimming, in which case nothing should
// happen.
func Target(resultsPage, input string) (url string, ok bool) {
	q := strings.TrimFunc(input, isTrimmable)
	if q == "" {
		return "", false
	}
	sep := "?"
	if strings.Contains(resultsPage, "?") {
		sep = "&"
	}
	return resultsPage + sep + "q=" + EncodeURIComponent(q), true
}

// isTrimmable matches what a browser's String.prototype.trim removes:
// white space, line terminators and the byte order mark.
func isTrimmable(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

const upperhex = "0123456789ABCDEF"

// EncodeURIComponent percent-encodes s the way browsers' encodeURIComponent
// does: everything except A-Z a-z 0-9 and -_.!~*'() is escaped as UTF-8
// bytes. url.QueryEscape differs on space and on !*'().
func EncodeURIComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldKeep(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func shouldKeep(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
