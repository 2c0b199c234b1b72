// Package symbolic is the exact expression kernel used as the coefficient
// domain of goseries.
//
// Expressions are immutable trees of rational numbers, symbols, sums,
// products, powers and named elementary functions. Constructors simplify
// eagerly into a canonical form, so structurally equal trees compare equal
// under Equal, Compare and Hash. Nothing is ever evaluated to floating point.
package symbolic

import (
	"fmt"
	"math/big"

	"github.com/cespare/xxhash/v2"
)

// ============================================================
// Core Interface
// ============================================================

type Expr interface {
	Simplify() Expr
	String() string
	LaTeX() string
	Equal(other Expr) bool
	rank() int
	hashInto(d *xxhash.Digest)
	toJSON() map[string]interface{}
}

// Ranks order expression kinds for Compare.
const (
	rankNum = iota
	rankSym
	rankPow
	rankMul
	rankAdd
	rankFunc
)

// ============================================================
// Num: exact rational number
// ============================================================

type Num struct{ val *big.Rat }

func N(n int64) *Num { return &Num{val: new(big.Rat).SetInt64(n)} }

// F returns p/q. It panics when q is zero.
func F(p, q int64) *Num {
	if q == 0 {
		panic("symbolic: denominator is zero")
	}
	return &Num{val: new(big.Rat).SetFrac(big.NewInt(p), big.NewInt(q))}
}

// NRat copies r into a new Num.
func NRat(r *big.Rat) *Num { return &Num{val: new(big.Rat).Set(r)} }

func (n *Num) Simplify() Expr        { return n }
func (n *Num) Equal(other Expr) bool { o, ok := other.(*Num); return ok && n.val.Cmp(o.val) == 0 }
func (n *Num) IsZero() bool          { return n.val.Sign() == 0 }
func (n *Num) IsOne() bool           { return n.val.IsInt() && n.val.Num().IsInt64() && n.val.Num().Int64() == 1 }
func (n *Num) IsNegOne() bool        { return n.val.IsInt() && n.val.Num().IsInt64() && n.val.Num().Int64() == -1 }
func (n *Num) IsInteger() bool       { return n.val.IsInt() }
func (n *Num) IsNegative() bool      { return n.val.Sign() < 0 }
func (n *Num) Rat() *big.Rat         { return new(big.Rat).Set(n.val) }
func (n *Num) rank() int             { return rankNum }

// Int64 reports the value as an int64 when it is an integer that fits.
func (n *Num) Int64() (int64, bool) {
	if !n.val.IsInt() || !n.val.Num().IsInt64() {
		return 0, false
	}
	return n.val.Num().Int64(), true
}

func (n *Num) String() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	return n.val.RatString()
}

func (n *Num) LaTeX() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	sign := ""
	v := new(big.Rat).Set(n.val)
	if v.Sign() < 0 {
		sign = "-"
		v.Neg(v)
	}
	return fmt.Sprintf("%s\\frac{%s}{%s}", sign, v.Num().String(), v.Denom().String())
}

func (n *Num) hashInto(d *xxhash.Digest) {
	_, _ = d.WriteString("n")
	_, _ = d.WriteString(n.val.RatString())
	_, _ = d.WriteString(";")
}

func (n *Num) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "num", "value": n.String()}
}

func numAdd(a, b *Num) *Num { return &Num{val: new(big.Rat).Add(a.val, b.val)} }
func numMul(a, b *Num) *Num { return &Num{val: new(big.Rat).Mul(a.val, b.val)} }
func numNeg(a *Num) *Num    { return &Num{val: new(big.Rat).Neg(a.val)} }

// maxNumPow bounds exact integer powers of rationals.
const maxNumPow = 4096

// numPow raises a non-zero (or positive-exponent) rational to an integer power.
func numPow(b *Num, e int64) (*Num, bool) {
	if e > maxNumPow || e < -maxNumPow {
		return nil, false
	}
	if b.IsZero() && e < 0 {
		return nil, false
	}
	neg := e < 0
	if neg {
		e = -e
	}
	k := big.NewInt(e)
	num := new(big.Int).Exp(b.val.Num(), k, nil)
	den := new(big.Int).Exp(b.val.Denom(), k, nil)
	if neg {
		num, den = den, num
	}
	return &Num{val: new(big.Rat).SetFrac(num, den)}, true
}

// numSqrt returns the exact square root of a non-negative rational square.
func numSqrt(b *Num) (*Num, bool) {
	if b.IsNegative() {
		return nil, false
	}
	num, den := b.val.Num(), b.val.Denom()
	rn, rd := new(big.Int).Sqrt(num), new(big.Int).Sqrt(den)
	if new(big.Int).Mul(rn, rn).Cmp(num) != 0 || new(big.Int).Mul(rd, rd).Cmp(den) != 0 {
		return nil, false
	}
	return &Num{val: new(big.Rat).SetFrac(rn, rd)}, true
}

// ============================================================
// Sym: symbolic variable
// ============================================================

type Sym struct{ name string }

func S(name string) *Sym             { return &Sym{name: name} }
func (s *Sym) Simplify() Expr        { return s }
func (s *Sym) String() string        { return s.name }
func (s *Sym) LaTeX() string         { return s.name }
func (s *Sym) Name() string          { return s.name }
func (s *Sym) Equal(other Expr) bool { o, ok := other.(*Sym); return ok && s.name == o.name }
func (s *Sym) rank() int             { return rankSym }

func (s *Sym) hashInto(d *xxhash.Digest) {
	_, _ = d.WriteString("s")
	_, _ = d.WriteString(s.name)
	_, _ = d.WriteString(";")
}

func (s *Sym) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "sym", "name": s.name}
}
