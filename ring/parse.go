package ring

import (
	"fmt"
	"math/big"
	"strings"
	"unicode"
)

// Parse reads a polynomial from src. The grammar covers integer and
// rational literals, ring variables, +, -, *, ^ with non-negative integer
// exponents, and parentheses. Juxtaposition is not multiplication: write
// x*y, not xy.
func Parse(r *Ring, src string) (Poly, error) {
	p := &parser{r: r, src: src}
	res, err := p.expr()
	if err != nil {
		return Poly{}, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return Poly{}, fmt.Errorf("ring: unexpected %q at offset %d in %q", p.src[p.pos], p.pos, src)
	}
	return res, nil
}

// MustParse is Parse for known-good input; it panics on error.
func MustParse(r *Ring, src string) Poly {
	res, err := Parse(r, src)
	if err != nil {
		panic(err)
	}
	return res
}

// ParseIdeal parses a comma-separated generator list.
func ParseIdeal(r *Ring, src string) (Ideal, error) {
	var out Ideal
	for _, part := range strings.Split(src, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		g, err := Parse(r, part)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

type parser struct {
	r   *Ring
	src string
	pos int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

// expr := term (('+'|'-') term)*
func (p *parser) expr() (Poly, error) {
	acc, err := p.term()
	if err != nil {
		return Poly{}, err
	}
	for {
		switch p.peek() {
		case '+':
			p.pos++
			t, err := p.term()
			if err != nil {
				return Poly{}, err
			}
			acc = acc.Add(t)
		case '-':
			p.pos++
			t, err := p.term()
			if err != nil {
				return Poly{}, err
			}
			acc = acc.Sub(t)
		default:
			return acc, nil
		}
	}
}

// term := factor ('*' factor)*
func (p *parser) term() (Poly, error) {
	acc, err := p.factor()
	if err != nil {
		return Poly{}, err
	}
	for p.peek() == '*' {
		p.pos++
		f, err := p.factor()
		if err != nil {
			return Poly{}, err
		}
		acc = acc.Mul(f)
	}
	return acc, nil
}

// factor := base ('^' uint)?
func (p *parser) factor() (Poly, error) {
	base, err := p.base()
	if err != nil {
		return Poly{}, err
	}
	if p.peek() != '^' {
		return base, nil
	}
	p.pos++
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return Poly{}, fmt.Errorf("ring: expected exponent at offset %d in %q", p.pos, p.src)
	}
	var e int
	if _, err := fmt.Sscanf(p.src[start:p.pos], "%d", &e); err != nil {
		return Poly{}, fmt.Errorf("ring: bad exponent %q: %w", p.src[start:p.pos], err)
	}
	res := p.r.One()
	for i := 0; i < e; i++ {
		res = res.Mul(base)
	}
	return res, nil
}

// base := number | ident | '(' expr ')' | '-' factor
func (p *parser) base() (Poly, error) {
	switch c := p.peek(); {
	case c == '(':
		p.pos++
		inner, err := p.expr()
		if err != nil {
			return Poly{}, err
		}
		if p.peek() != ')' {
			return Poly{}, fmt.Errorf("ring: missing ')' at offset %d in %q", p.pos, p.src)
		}
		p.pos++
		return inner, nil
	case c == '-':
		p.pos++
		f, err := p.factor()
		if err != nil {
			return Poly{}, err
		}
		return f.Neg(), nil
	case c >= '0' && c <= '9':
		start := p.pos
		for p.pos < len(p.src) && ((p.src[p.pos] >= '0' && p.src[p.pos] <= '9') || p.src[p.pos] == '/') {
			p.pos++
		}
		rat, ok := new(big.Rat).SetString(p.src[start:p.pos])
		if !ok {
			return Poly{}, fmt.Errorf("ring: bad number %q in %q", p.src[start:p.pos], p.src)
		}
		return p.r.Const(rat), nil
	case isIdentStart(c):
		start := p.pos
		for p.pos < len(p.src) && isIdentPart(rune(p.src[p.pos])) {
			p.pos++
		}
		name := p.src[start:p.pos]
		v, ok := p.r.VarByName(name)
		if !ok {
			return Poly{}, fmt.Errorf("ring: unknown variable %q in %q", name, p.src)
		}
		return v, nil
	case c == 0:
		return Poly{}, fmt.Errorf("ring: unexpected end of input in %q", p.src)
	default:
		return Poly{}, fmt.Errorf("ring: unexpected %q at offset %d in %q", c, p.pos, p.src)
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || unicode.IsLetter(rune(c))
}

func isIdentPart(c rune) bool {
	return c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c)
}
