package phrase

import (
	"fmt"
	"strconv"
	"unicode"
)

// tokenKind classifies a scanned token.
type tokenKind int

const (
	tokenIdent tokenKind = iota
	tokenNumber
	tokenString
	tokenOperator
	tokenComma
)

// String returns a human-readable name for the token kind.
func (k tokenKind) String() string {
	switch k {
	case tokenIdent:
		return "identifier"
	case tokenNumber:
		return "number"
	case tokenString:
		return "string"
	case tokenOperator:
		return "operator"
	case tokenComma:
		return "comma"
	default:
		return "unknown"
	}
}

// token is a single lexical element of a phrase.
type token struct {
	kind   tokenKind
	text   string
	offset int
}

// Parse parses a single assertion phrase into a Phrase. A
// phrase that does not match the grammar returns a *ParseError
// describing the offending token.
//
// Grammar:
//
//	phrase   = compare | property | contains | predicate
//	compare  = op literal
//	property = "has" ident op literal
//	contains = "contains" literal { "," literal }
//	predicate = "is" ident
//	op       = "==" | "!=" | "<" | "<=" | ">" | ">="
func Parse(s string) (Phrase, error) {
	toks, err := scan(s)
	if err != nil {
		return Phrase{}, err
	}

	p := &parser{phrase: s, toks: toks}
	return p.parse()
}

// MustParse parses a phrase and panics on error. It is intended
// for package-level phrase constants.
func MustParse(s string) Phrase {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// parser consumes a token stream for a single phrase.
type parser struct {
	phrase string
	toks   []token
	pos    int
}

func (p *parser) parse() (Phrase, error) {
	first, err := p.next("phrase")
	if err != nil {
		return Phrase{}, err
	}

	var out Phrase
	out.Raw = p.phrase

	switch {
	case first.kind == tokenOperator:
		op, ok := lookupOperator(first.text)
		if !ok {
			return Phrase{}, p.errAt(
				first, "unsupported operator %q", first.text,
			)
		}
		value, err := p.literal()
		if err != nil {
			return Phrase{}, err
		}
		out.Kind = KindCompare
		out.Op = op
		out.Value = value

	case first.kind == tokenIdent && first.text == "has":
		prop, err := p.ident("property name")
		if err != nil {
			return Phrase{}, err
		}
		op, err := p.operator()
		if err != nil {
			return Phrase{}, err
		}
		value, err := p.literal()
		if err != nil {
			return Phrase{}, err
		}
		out.Kind = KindProperty
		out.Property = prop
		out.Op = op
		out.Value = value

	case first.kind == tokenIdent && first.text == "contains":
		values, err := p.literalList()
		if err != nil {
			return Phrase{}, err
		}
		out.Kind = KindContains
		out.Values = values

	case first.kind == tokenIdent && first.text == "is":
		pred, err := p.ident("predicate name")
		if err != nil {
			return Phrase{}, err
		}
		out.Kind = KindPredicate
		out.Property = pred

	default:
		return Phrase{}, p.errAt(
			first, "unsupported keyword %q", first.text,
		)
	}

	if tok, ok := p.peek(); ok {
		return Phrase{}, p.errAt(
			tok, "unexpected trailing %s %q", tok.kind, tok.text,
		)
	}

	return out, nil
}

// next consumes the next token, or fails describing what was
// expected.
func (p *parser) next(want string) (token, error) {
	if p.pos >= len(p.toks) {
		return token{}, &ParseError{
			Phrase: p.phrase,
			Offset: len(p.phrase),
			Message: fmt.Sprintf(
				"expected %s, found end of phrase", want,
			),
		}
	}
	tok := p.toks[p.pos]
	p.pos++
	return tok, nil
}

// peek returns the next token without consuming it.
func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

// ident consumes an identifier token.
func (p *parser) ident(want string) (string, error) {
	tok, err := p.next(want)
	if err != nil {
		return "", err
	}
	if tok.kind != tokenIdent {
		return "", p.errAt(
			tok, "expected %s, found %q", want, tok.text,
		)
	}
	return tok.text, nil
}

// operator consumes a comparison operator token.
func (p *parser) operator() (Operator, error) {
	tok, err := p.next("operator")
	if err != nil {
		return 0, err
	}
	op, ok := lookupOperator(tok.text)
	if tok.kind != tokenOperator || !ok {
		return 0, p.errAt(
			tok, "expected operator, found %q", tok.text,
		)
	}
	return op, nil
}

// literal consumes a single literal token and converts it to
// its Go value: int, float64, bool, or string.
func (p *parser) literal() (any, error) {
	tok, err := p.next("value")
	if err != nil {
		return nil, err
	}

	switch tok.kind {
	case tokenString:
		return tok.text, nil
	case tokenNumber:
		if i, err := strconv.Atoi(tok.text); err == nil {
			return i, nil
		}
		f, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			return nil, p.errAt(
				tok, "invalid number %q", tok.text,
			)
		}
		return f, nil
	case tokenIdent:
		switch tok.text {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		// Bare words are string literals.
		return tok.text, nil
	default:
		return nil, p.errAt(
			tok, "expected value, found %q", tok.text,
		)
	}
}

// literalList consumes one or more comma-separated literals.
func (p *parser) literalList() ([]any, error) {
	var values []any

	v, err := p.literal()
	if err != nil {
		return nil, err
	}
	values = append(values, v)

	for {
		tok, ok := p.peek()
		if !ok || tok.kind != tokenComma {
			return values, nil
		}
		p.pos++

		v, err := p.literal()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
}

// errAt builds a ParseError pointing at the given token.
func (p *parser) errAt(
	tok token,
	format string,
	args ...any,
) error {
	return &ParseError{
		Phrase:  p.phrase,
		Offset:  tok.offset,
		Message: fmt.Sprintf(format, args...),
	}
}

// scan tokenizes a phrase. It recognizes identifiers, numbers
// (with optional sign and fraction), quoted strings, comparison
// operators, and commas.
func scan(s string) ([]token, error) {
	var toks []token

	i := 0
	for i < len(s) {
		c := s[i]

		switch {
		case c == ' ' || c == '\t':
			i++

		case c == ',':
			toks = append(toks, token{
				kind: tokenComma, text: ",", offset: i,
			})
			i++

		case c == '"' || c == '\'':
			quote := c
			j := i + 1
			for j < len(s) && s[j] != quote {
				j++
			}
			if j >= len(s) {
				return nil, &ParseError{
					Phrase:  s,
					Offset:  i,
					Message: "unterminated string literal",
				}
			}
			toks = append(toks, token{
				kind:   tokenString,
				text:   s[i+1 : j],
				offset: i,
			})
			i = j + 1

		case c == '=' || c == '!' || c == '<' || c == '>':
			j := i + 1
			if j < len(s) && s[j] == '=' {
				j++
			}
			op := s[i:j]
			if _, ok := lookupOperator(op); !ok {
				return nil, &ParseError{
					Phrase: s,
					Offset: i,
					Message: fmt.Sprintf(
						"unsupported operator %q", op,
					),
				}
			}
			toks = append(toks, token{
				kind: tokenOperator, text: op, offset: i,
			})
			i = j

		case isDigit(c) || (c == '-' && i+1 < len(s) && isDigit(s[i+1])):
			j := i + 1
			for j < len(s) && (isDigit(s[j]) || s[j] == '.') {
				j++
			}
			toks = append(toks, token{
				kind:   tokenNumber,
				text:   s[i:j],
				offset: i,
			})
			i = j

		case isIdentStart(rune(c)):
			j := i + 1
			for j < len(s) && isIdentPart(rune(s[j])) {
				j++
			}
			toks = append(toks, token{
				kind:   tokenIdent,
				text:   s[i:j],
				offset: i,
			})
			i = j

		default:
			return nil, &ParseError{
				Phrase: s,
				Offset: i,
				Message: fmt.Sprintf(
					"unexpected character %q", c,
				),
			}
		}
	}

	if len(toks) == 0 {
		return nil, &ParseError{
			Phrase:  s,
			Offset:  0,
			Message: "empty phrase",
		}
	}

	return toks, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}
