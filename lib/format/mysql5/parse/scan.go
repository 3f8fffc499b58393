package parse

import (
	"strings"
)

// walk calls f with the index and paren depth of every byte of src that is
// not part of a quoted string, a quoted identifier or a comment. Depth is
// the depth before the byte itself is applied. Returning false stops the walk.
func walk(src string, f func(i, depth int) bool) {
	depth := 0
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case c == '\'' || c == '"' || c == '`':
			i = skipQuoted(src, i)
			continue
		case c == '#' || isLineComment(src, i):
			i = skipLine(src, i)
			continue
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			i = skipBlockComment(src, i)
			continue
		}
		if !f(i, depth) {
			return
		}
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		}
	}
}

// skipQuoted returns the index of the quote closing the one at start.
// Doubled quotes are escapes; backslash escapes apply to strings but not to
// backtick identifiers.
func skipQuoted(src string, start int) int {
	quote := src[start]
	for i := start + 1; i < len(src); i++ {
		switch src[i] {
		case '\\':
			if quote != '`' {
				i++
			}
		case quote:
			if i+1 < len(src) && src[i+1] == quote {
				i++
				continue
			}
			return i
		}
	}
	return len(src) - 1
}

// "-- " starts a comment, "--x" does not
func isLineComment(src string, i int) bool {
	if !strings.HasPrefix(src[i:], "--") {
		return false
	}
	return i+2 == len(src) || isSpace(src[i+2])
}

func skipLine(src string, start int) int {
	end := strings.IndexByte(src[start:], '\n')
	if end < 0 {
		return len(src) - 1
	}
	return start + end
}

func skipBlockComment(src string, start int) int {
	end := strings.Index(src[start+2:], "*/")
	if end < 0 {
		return len(src) - 1
	}
	return start + 2 + end + 1
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

// splitTopLevel splits src on sep wherever sep is outside parens, quotes and comments
func splitTopLevel(src string, sep byte) []string {
	out := []string{}
	start := 0
	walk(src, func(i, depth int) bool {
		if depth == 0 && src[i] == sep {
			out = append(out, src[start:i])
			start = i + 1
		}
		return true
	})
	return append(out, src[start:])
}

// findParens returns the indexes of the first top level '(' of src and of
// its matching ')', or -1s when there is no balanced pair
func findParens(src string) (int, int) {
	open, close := -1, -1
	walk(src, func(i, depth int) bool {
		switch {
		case open < 0 && src[i] == '(':
			open = i
		case open >= 0 && depth == 1 && src[i] == ')':
			close = i
			return false
		}
		return true
	})
	if close < 0 {
		return -1, -1
	}
	return open, close
}

// trimLeadingComments removes whitespace and comments in front of a statement.
// Executable comments ("/*!40101 ... */") are statement content and are kept.
func trimLeadingComments(src string) string {
	for {
		src = strings.TrimLeft(src, " \t\n\r\f\v")
		switch {
		case strings.HasPrefix(src, "#") || isLineComment(src, 0):
			src = src[skipLine(src, 0)+1:]
		case strings.HasPrefix(src, "/*") && !strings.HasPrefix(src, "/*!"):
			src = src[skipBlockComment(src, 0)+1:]
		default:
			return src
		}
	}
}

// readIdentifier reads a bare or backtick quoted identifier from the start
// of src, returning it unquoted along with the remaining text
func readIdentifier(src string) (string, string) {
	src = strings.TrimLeft(src, " \t\n\r\f\v")
	if src == "" {
		return "", ""
	}
	if src[0] == '`' {
		end := skipQuoted(src, 0)
		if end == 0 || src[end] != '`' {
			return "", src
		}
		return strings.ReplaceAll(src[1:end], "``", "`"), src[end+1:]
	}
	end := 0
	for end < len(src) && isIdentifierByte(src[end]) {
		end++
	}
	return src[:end], src[end:]
}

func isIdentifierByte(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') ||
		c >= 0x80
}
