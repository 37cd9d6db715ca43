// Package literal implements a reader for the tuple literal grammar,
// for text-driven collaborators such as cmd/tsrepl. It is not on the
// path of any Store/Space operation; the core never parses text.
//
// The scanner uses a rune-indexed context reused through a sync.Pool
// rather than reallocated per call, and a tokenize function that
// accumulates a token slice.
package literal

import (
	"sync"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokLParen
	tokRParen
	tokComma
	tokUnderscore
	tokInt
	tokFloat
	tokString
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

type scanContext struct {
	src []rune
	idx int
	buf []rune
}

var scanCtxPool = sync.Pool{
	New: func() interface{} { return &scanContext{} },
}

func newScanContext(src string) *scanContext {
	ctx := scanCtxPool.Get().(*scanContext)
	ctx.src = []rune(src)
	ctx.idx = 0
	ctx.buf = ctx.buf[:0]
	return ctx
}

func (c *scanContext) release() {
	scanCtxPool.Put(c)
}

func (c *scanContext) eof() bool {
	return c.idx >= len(c.src)
}

func (c *scanContext) peek() rune {
	if c.eof() {
		return 0
	}
	return c.src[c.idx]
}

func (c *scanContext) advance() rune {
	r := c.src[c.idx]
	c.idx++
	return r
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// tokenize splits src into tokens per the tuple literal grammar.
// It reports a *SyntaxError for a character outside the grammar or an
// unterminated string; other malformed input surfaces as a
// *SyntaxError when the parser meets an unexpected token.
func tokenize(src string) ([]token, error) {
	ctx := newScanContext(src)
	defer ctx.release()

	var tokens []token
	for !ctx.eof() {
		r := ctx.peek()
		switch {
		case isSpace(r):
			ctx.advance()
		case r == '(':
			tokens = append(tokens, token{kind: tokLParen, pos: ctx.idx})
			ctx.advance()
		case r == ')':
			tokens = append(tokens, token{kind: tokRParen, pos: ctx.idx})
			ctx.advance()
		case r == ',':
			tokens = append(tokens, token{kind: tokComma, pos: ctx.idx})
			ctx.advance()
		case r == '_':
			tokens = append(tokens, token{kind: tokUnderscore, pos: ctx.idx})
			ctx.advance()
		case r == '"':
			tok, err := scanString(ctx)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		case r == '-' || isDigit(r):
			tokens = append(tokens, scanNumber(ctx))
		default:
			return nil, newSyntaxError(ctx.idx, "unexpected character %q", r)
		}
	}
	tokens = append(tokens, token{kind: tokEOF, pos: ctx.idx})
	return tokens, nil
}

func scanString(ctx *scanContext) (token, error) {
	start := ctx.idx
	ctx.advance() // opening quote
	ctx.buf = ctx.buf[:0]
	for {
		if ctx.eof() {
			return token{}, newSyntaxError(start, "unterminated string literal")
		}
		r := ctx.advance()
		if r == '"' {
			return token{kind: tokString, text: string(ctx.buf), pos: start}, nil
		}
		ctx.buf = append(ctx.buf, r)
	}
}

// scanNumber reads an int or a float: an optional '-', digits, and, if
// a '.' follows, the '.' and the digits after it. No exponent form is
// accepted. The token is not checked here for digits on both sides of
// the '.'; the parser rejects a token that lacks them.
func scanNumber(ctx *scanContext) token {
	start := ctx.idx
	ctx.buf = ctx.buf[:0]
	if ctx.peek() == '-' {
		ctx.buf = append(ctx.buf, ctx.advance())
	}
	for !ctx.eof() && isDigit(ctx.peek()) {
		ctx.buf = append(ctx.buf, ctx.advance())
	}
	kind := tokInt
	if !ctx.eof() && ctx.peek() == '.' {
		kind = tokFloat
		ctx.buf = append(ctx.buf, ctx.advance())
		for !ctx.eof() && isDigit(ctx.peek()) {
			ctx.buf = append(ctx.buf, ctx.advance())
		}
	}
	return token{kind: kind, text: string(ctx.buf), pos: start}
}
