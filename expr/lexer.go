package expr

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenNumber
	tokenString
	tokenIdent
	tokenOperator
	tokenLParen
	tokenRParen
)

type token struct {
	kind tokenKind
	text string
	pos  int
	// lit holds the decoded literal value for number and string tokens.
	lit interface{}
}

// splitHeader separates the pipe-enclosed parameter list from the expression body.
// It returns the parameter names, the body text and the body's offset within source.
func splitHeader(source string) (params []string, body string, offset int, err error) {
	if !strings.HasPrefix(source, "|") {
		return nil, "", 0, &SyntaxError{Source: source, Pos: 0, Msg: "expected parameter list between pipes"}
	}

	end := strings.IndexByte(source[1:], '|')
	if end < 0 {
		return nil, "", 0, &SyntaxError{Source: source, Pos: len(source), Msg: "unterminated parameter list"}
	}
	end++ // position of the closing pipe within source

	header := source[1:end]
	if strings.TrimSpace(header) != "" {
		for _, raw := range strings.Split(header, ",") {
			name := strings.TrimSpace(raw)
			if !isIdentifier(name) {
				return nil, "", 0, &SyntaxError{Source: source, Pos: 1, Msg: "invalid parameter name " + strconv.Quote(name)}
			}
			params = append(params, name)
		}
	}

	body = source[end+1:]
	if strings.TrimSpace(body) == "" {
		return nil, "", 0, &SyntaxError{Source: source, Pos: end + 1, Msg: "missing expression body"}
	}
	return params, body, end + 1, nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

// tokenize scans the expression body into a flat token list ending with tokenEOF.
// Offsets in the returned tokens are relative to the full lambda source.
func tokenize(source, body string, offset int) ([]token, error) {
	var tokens []token
	pos := 0

	for pos < len(body) {
		r, size := utf8.DecodeRuneInString(body[pos:])

		switch {
		case unicode.IsSpace(r):
			pos += size
			continue

		case unicode.IsDigit(r):
			start := pos
			for pos < len(body) && isDigitByte(body[pos]) {
				pos++
			}
			isFloat := false
			if pos < len(body) && body[pos] == '.' && pos+1 < len(body) && isDigitByte(body[pos+1]) {
				isFloat = true
				pos++
				for pos < len(body) && isDigitByte(body[pos]) {
					pos++
				}
			}
			text := body[start:pos]
			var lit interface{}
			if isFloat {
				f, err := strconv.ParseFloat(text, 64)
				if err != nil {
					return nil, &SyntaxError{Source: source, Pos: offset + start, Msg: "malformed number " + text}
				}
				lit = f
			} else {
				n, err := strconv.Atoi(text)
				if err != nil {
					return nil, &SyntaxError{Source: source, Pos: offset + start, Msg: "malformed number " + text}
				}
				lit = n
			}
			tokens = append(tokens, token{kind: tokenNumber, text: text, pos: offset + start, lit: lit})

		case r == '"':
			start := pos
			pos += size
			var sb strings.Builder
			closed := false
			for pos < len(body) {
				c := body[pos]
				if c == '"' {
					pos++
					closed = true
					break
				}
				if c == '\\' {
					if pos+1 >= len(body) {
						break
					}
					pos++
					switch body[pos] {
					case 'n':
						sb.WriteByte('\n')
					case 't':
						sb.WriteByte('\t')
					case '\\':
						sb.WriteByte('\\')
					case '"':
						sb.WriteByte('"')
					default:
						return nil, &SyntaxError{Source: source, Pos: offset + pos, Msg: "unknown escape sequence"}
					}
					pos++
					continue
				}
				sb.WriteByte(c)
				pos++
			}
			if !closed {
				return nil, &SyntaxError{Source: source, Pos: offset + start, Msg: "unterminated string literal"}
			}
			tokens = append(tokens, token{kind: tokenString, text: body[start:pos], pos: offset + start, lit: sb.String()})

		case r == '_' || unicode.IsLetter(r):
			start := pos
			for pos < len(body) {
				r2, size2 := utf8.DecodeRuneInString(body[pos:])
				if r2 == '_' || unicode.IsLetter(r2) || unicode.IsDigit(r2) {
					pos += size2
					continue
				}
				break
			}
			tokens = append(tokens, token{kind: tokenIdent, text: body[start:pos], pos: offset + start})

		case r == '(':
			tokens = append(tokens, token{kind: tokenLParen, text: "(", pos: offset + pos})
			pos++

		case r == ')':
			tokens = append(tokens, token{kind: tokenRParen, text: ")", pos: offset + pos})
			pos++

		default:
			op, ok := scanOperator(body[pos:])
			if !ok {
				return nil, &SyntaxError{Source: source, Pos: offset + pos, Msg: "unexpected character " + strconv.QuoteRune(r)}
			}
			tokens = append(tokens, token{kind: tokenOperator, text: op, pos: offset + pos})
			pos += len(op)
		}
	}

	tokens = append(tokens, token{kind: tokenEOF, pos: offset + len(body)})
	return tokens, nil
}

func isDigitByte(b byte) bool {
	return '0' <= b && b <= '9'
}

var twoCharOperators = []string{"==", "!=", "<=", ">=", "&&", "||"}

func scanOperator(rest string) (string, bool) {
	for _, op := range twoCharOperators {
		if strings.HasPrefix(rest, op) {
			return op, true
		}
	}
	switch rest[0] {
	case '+', '-', '*', '/', '%', '<', '>', '!':
		return rest[:1], true
	}
	return "", false
}
