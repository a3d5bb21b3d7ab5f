package enumconf

import (
	"strconv"
	"strings"
)

// nextWord splits the first word off s. A word is a run of non-space bytes,
// or a single- or double-quoted string in which a backslash escapes the next
// byte. Quotes are removed. rest has its leading whitespace trimmed and is
// empty when s holds no more words.
func nextWord(s string) (word, rest string) {
	s = strings.TrimLeft(s, " \t\r\n")
	if s == "" {
		return "", ""
	}
	if q := s[0]; q == '"' || q == '\'' {
		var b strings.Builder
		i := 1
		for ; i < len(s) && s[i] != q; i++ {
			if s[i] == '\\' && i+1 < len(s) {
				i++
			}
			b.WriteByte(s[i])
		}
		if i < len(s) {
			i++ // closing quote
		}
		return b.String(), strings.TrimLeft(s[i:], " \t\r\n")
	}
	end := strings.IndexAny(s, " \t\r\n")
	if end < 0 {
		return s, ""
	}
	return s[:end], strings.TrimLeft(s[end:], " \t\r\n")
}

// scanPair parses a "value:label" token. The value is a decimal integer with
// an optional sign and must be followed directly by a colon; the label is
// everything after that first colon.
func scanPair(tok string) (value int, label string, ok bool) {
	colon := strings.IndexByte(tok, ':')
	if colon <= 0 {
		return 0, "", false
	}
	v, err := strconv.Atoi(tok[:colon])
	if err != nil {
		return 0, "", false
	}
	return v, tok[colon+1:], true
}

// ParseKey reports whether key is exactly two non-negative decimal integers
// joined by a colon, and returns them.
func ParseKey(key string) (major, minor uint, ok bool) {
	a, b, found := strings.Cut(key, ":")
	if !found {
		return 0, 0, false
	}
	maj, ok := parseUint(a)
	if !ok {
		return 0, 0, false
	}
	mnr, ok := parseUint(b)
	if !ok {
		return 0, 0, false
	}
	return maj, mnr, true
}

func parseUint(s string) (uint, bool) {
	if s == "" || s[0] == '+' || s[0] == '-' {
		return 0, false
	}
	n, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}

// quoteWord returns tok unchanged when nextWord would read it back as one
// word, otherwise a double-quoted form.
func quoteWord(tok string) string {
	if tok != "" && !strings.ContainsAny(tok, " \t\r\n") && tok[0] != '"' && tok[0] != '\'' {
		return tok
	}
	var b strings.Builder
	b.Grow(len(tok) + 2)
	b.WriteByte('"')
	for i := 0; i < len(tok); i++ {
		if tok[i] == '"' || tok[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(tok[i])
	}
	b.WriteByte('"')
	return b.String()
}
