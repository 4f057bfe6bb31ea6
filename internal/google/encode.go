package google

import "strings"

const upperhex = "0123456789ABCDEF"

// PercentEncode escapes s per RFC 3986: the unreserved characters
// (ALPHA / DIGIT / "-" / "_" / "." / "~") pass through and every other byte
// becomes %XX with uppercase hex digits.
//
// net/url is not used here because its escaping rules differ in both
// directions: QueryEscape turns spaces into "+" and escapes "~", while
// PathEscape leaves sub-delimiters like "$" and "&" alone.
func PercentEncode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9',
			c == '-', c == '_', c == '.', c == '~':
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0xf])
		}
	}
	return b.String()
}
