package formats

import (
	"fmt"
	"strconv"
	"strings"
)

type tokenKind int

const (
	tokLBrace tokenKind = iota
	tokRBrace
	tokNumber
)

type token struct {
	kind  tokenKind
	text  string // number body without literal suffix
	value float64
	line  int
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool { return isIdentStart(c) || isDigit(c) }

// numberStart reports whether a number literal begins at src[i].
func numberStart(src string, i int) bool {
	c := src[i]
	if isDigit(c) {
		return true
	}
	if c == '.' || c == '-' || c == '+' {
		j := i + 1
		if c != '.' && j < len(src) && src[j] == '.' {
			j++
		}
		return j < len(src) && isDigit(src[j])
	}
	return false
}

// lex splits C-style array literal text into braces and numbers. Commas,
// whitespace, comments, identifiers and declaration punctuation are skipped, so
// a whole "static const std::vector<T> name = { ... };" block can be fed in.
func lex(src string) ([]token, error) {
	var toks []token
	line := 1
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '\n':
			line++
			i++
		case c == ' ' || c == '\t' || c == '\r' || c == ',':
			i++
		case c == '{':
			toks = append(toks, token{kind: tokLBrace, line: line})
			i++
		case c == '}':
			toks = append(toks, token{kind: tokRBrace, line: line})
			i++
		case strings.HasPrefix(src[i:], "//"):
			for i < len(src) && src[i] != '\n' {
				i++
			}
		case strings.HasPrefix(src[i:], "/*"):
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				return nil, fmt.Errorf("%w: unterminated comment at line %d", ErrUnexpected, line)
			}
			line += strings.Count(src[i:i+2+end], "\n")
			i += end + 4
		case isIdentStart(c):
			for i < len(src) && isIdentChar(src[i]) {
				i++
			}
		case numberStart(src, i):
			start := i
			i++
			for i < len(src) {
				d := src[i]
				if isDigit(d) || d == '.' || d == 'e' || d == 'E' {
					i++
					continue
				}
				if (d == '-' || d == '+') && (src[i-1] == 'e' || src[i-1] == 'E') {
					i++
					continue
				}
				break
			}
			body := src[start:i]
			for i < len(src) && strings.IndexByte("fFuUlL", src[i]) >= 0 {
				i++
			}
			v, err := strconv.ParseFloat(body, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: number %q at line %d", ErrUnexpected, src[start:i], line)
			}
			toks = append(toks, token{kind: tokNumber, text: body, value: v, line: line})
		case strings.IndexByte(":<>=;[]()*&", c) >= 0:
			i++
		default:
			return nil, fmt.Errorf("%w: %q at line %d", ErrUnexpected, c, line)
		}
	}
	return toks, nil
}
