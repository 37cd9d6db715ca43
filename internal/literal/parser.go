package literal

import (
	"strconv"
	"strings"

	"github.com/linda-space/tuplespace/element"
)

// Parse reads src as a tuple literal and returns the corresponding
// element.Tuple. An underscore position produces element.Any, so Parse
// is equally usable for templates and for fully defined tuples;
// callers that need a defined tuple should check Tuple.IsDefined
// themselves, the same separation of concerns Store.Out enforces at
// its own boundary.
func Parse(src string) (element.Tuple, error) {
	tokens, err := tokenize(src)
	if err != nil {
		return element.Tuple{}, err
	}
	p := &parser{tokens: tokens}
	elems, err := p.parseTuple()
	if err != nil {
		return element.Tuple{}, err
	}
	if p.cur().kind != tokEOF {
		return element.Tuple{}, newSyntaxError(p.cur().pos, "unexpected trailing input")
	}
	return element.NewTuple(elems...), nil
}

type parser struct {
	tokens []token
	idx    int
}

func (p *parser) cur() token {
	return p.tokens[p.idx]
}

func (p *parser) advance() token {
	t := p.tokens[p.idx]
	if p.idx < len(p.tokens)-1 {
		p.idx++
	}
	return t
}

func (p *parser) expect(k tokenKind, what string) (token, error) {
	if p.cur().kind != k {
		return token{}, newSyntaxError(p.cur().pos, "expected %s", what)
	}
	return p.advance(), nil
}

func (p *parser) parseTuple() ([]element.Element, error) {
	if _, err := p.expect(tokLParen, "'('"); err != nil {
		return nil, err
	}
	var elems []element.Element
	if p.cur().kind != tokRParen {
		for {
			e, err := p.parseElem()
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
			if p.cur().kind == tokComma {
				p.advance()
				continue
			}
			// Whitespace also separates elements; the scanner drops it, so
			// any token other than ')' or end of input starts the next one.
			if p.cur().kind != tokRParen && p.cur().kind != tokEOF {
				continue
			}
			break
		}
	}
	if _, err := p.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}
	return elems, nil
}

func (p *parser) parseElem() (element.Element, error) {
	switch p.cur().kind {
	case tokUnderscore:
		p.advance()
		return element.Any, nil
	case tokString:
		t := p.advance()
		return element.Str(t.text), nil
	case tokInt:
		t := p.advance()
		n, err := strconv.ParseInt(t.text, 10, 32)
		if err != nil {
			return element.Element{}, newSyntaxError(t.pos, "invalid integer literal %q", t.text)
		}
		return element.Int(int32(n)), nil
	case tokFloat:
		t := p.advance()
		dot := strings.IndexByte(t.text, '.')
		if dot == 0 || t.text[dot-1] == '-' || dot == len(t.text)-1 {
			return element.Element{}, newSyntaxError(t.pos, "invalid float literal %q", t.text)
		}
		f, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return element.Element{}, newSyntaxError(t.pos, "invalid float literal %q", t.text)
		}
		el, err := element.Float(f)
		if err != nil {
			return element.Element{}, newSyntaxError(t.pos, "NaN is not a representable float literal")
		}
		return el, nil
	case tokLParen:
		elems, err := p.parseTuple()
		if err != nil {
			return element.Element{}, err
		}
		return element.Nested(element.NewTuple(elems...)), nil
	default:
		return element.Element{}, newSyntaxError(p.cur().pos, "expected an element")
	}
}
