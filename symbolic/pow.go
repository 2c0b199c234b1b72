package symbolic

import (
	"math/big"

	"github.com/cespare/xxhash/v2"
)

// ============================================================
// Pow: base^exponent
// ============================================================

type Pow struct{ base, exp Expr }

func PowOf(base, exp Expr) Expr { return (&Pow{base: base, exp: exp}).Simplify() }

// SqrtOf is arg^(1/2).
func SqrtOf(arg Expr) Expr { return PowOf(arg, F(1, 2)) }

func (p *Pow) Simplify() Expr {
	base := p.base.Simplify()
	exp := p.exp.Simplify()
	en, expIsNum := exp.(*Num)
	bn, baseIsNum := base.(*Num)

	// 0^0 and 0^negative stay unevaluated.
	if baseIsNum && bn.IsZero() {
		if expIsNum && !en.IsZero() && !en.IsNegative() {
			return N(0)
		}
		return &Pow{base: base, exp: exp}
	}
	if expIsNum && en.IsZero() {
		return N(1)
	}
	if expIsNum && en.IsOne() {
		return base
	}
	if baseIsNum && bn.IsOne() {
		return N(1)
	}
	if baseIsNum && expIsNum {
		if e, ok := en.Int64(); ok {
			if r, ok := numPow(bn, e); ok {
				return r
			}
		} else if en.val.Denom().Cmp(big.NewInt(2)) == 0 && en.val.Num().IsInt64() {
			if root, ok := numSqrt(bn); ok {
				if r, ok := numPow(root, en.val.Num().Int64()); ok {
					return r
				}
			}
		}
	}
	if expIsNum && en.IsInteger() {
		switch b := base.(type) {
		case *Pow:
			return PowOf(b.base, MulOf(b.exp, en))
		case *Mul:
			factors := make([]Expr, len(b.factors))
			for i, f := range b.factors {
				factors[i] = PowOf(f, en)
			}
			return MulOf(factors...)
		}
	}
	return &Pow{base: base, exp: exp}
}

func (p *Pow) String() string {
	return p.render(func(e Expr) string { return e.String() }, "(", ")", "^", "")
}

func (p *Pow) LaTeX() string {
	return p.render(func(e Expr) string { return e.LaTeX() }, "\\left(", "\\right)", "^{", "}")
}

func (p *Pow) render(r func(Expr) string, open, close, sup, unsup string) string {
	baseStr := r(p.base)
	switch b := p.base.(type) {
	case *Add, *Mul, *Pow:
		baseStr = open + baseStr + close
	case *Num:
		if !b.IsInteger() || b.IsNegative() {
			baseStr = open + baseStr + close
		}
	}
	expStr := r(p.exp)
	if unsup == "" {
		if n, ok := p.exp.(*Num); !ok || !n.IsInteger() || n.IsNegative() {
			if _, isSym := p.exp.(*Sym); !isSym {
				expStr = open + expStr + close
			}
		}
	}
	return baseStr + sup + expStr + unsup
}

func (p *Pow) Equal(other Expr) bool {
	o, ok := other.(*Pow)
	return ok && p.base.Equal(o.base) && p.exp.Equal(o.exp)
}

func (p *Pow) rank() int { return rankPow }

func (p *Pow) hashInto(d *xxhash.Digest) {
	_, _ = d.WriteString("^(")
	p.base.hashInto(d)
	p.exp.hashInto(d)
	_, _ = d.WriteString(")")
}

func (p *Pow) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "pow", "base": p.base.toJSON(), "exp": p.exp.toJSON()}
}

func (p *Pow) Base() Expr    { return p.base }
func (p *Pow) ExpExpr() Expr { return p.exp }
