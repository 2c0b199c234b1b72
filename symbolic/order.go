package symbolic

import (
	"cmp"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ============================================================
// Ordering and hashing
// ============================================================

// Compare is a total order on simplified expressions, consistent with Equal.
// Kinds order as numbers, symbols, powers, products, sums, functions.
func Compare(a, b Expr) int {
	if c := cmp.Compare(a.rank(), b.rank()); c != 0 {
		return c
	}
	switch x := a.(type) {
	case *Num:
		return x.val.Cmp(b.(*Num).val)
	case *Sym:
		return strings.Compare(x.name, b.(*Sym).name)
	case *Pow:
		y := b.(*Pow)
		if c := Compare(x.base, y.base); c != 0 {
			return c
		}
		return Compare(x.exp, y.exp)
	case *Mul:
		return compareLists(x.factors, b.(*Mul).factors)
	case *Add:
		return compareLists(x.terms, b.(*Add).terms)
	case *Func:
		y := b.(*Func)
		if c := strings.Compare(x.name, y.name); c != 0 {
			return c
		}
		return Compare(x.arg, y.arg)
	}
	return 0
}

func compareLists(a, b []Expr) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func sortExprs(es []Expr) {
	slices.SortStableFunc(es, Compare)
}

// Hash is a structural 64-bit hash; Equal expressions hash alike.
func Hash(e Expr) uint64 {
	d := xxhash.New()
	e.hashInto(d)
	return d.Sum64()
}

// likeTerms groups values under structurally equal expressions, in first
// seen order.
type likeTerms[V any] struct {
	keys   []Expr
	vals   []V
	byHash map[uint64][]int
}

// index returns the slot of e, adding one holding init when e is new.
func (l *likeTerms[V]) index(e Expr, init V) int {
	if l.byHash == nil {
		l.byHash = map[uint64][]int{}
	}
	h := Hash(e)
	for _, i := range l.byHash[h] {
		if l.keys[i].Equal(e) {
			return i
		}
	}
	l.keys = append(l.keys, e)
	l.vals = append(l.vals, init)
	l.byHash[h] = append(l.byHash[h], len(l.keys)-1)
	return len(l.keys) - 1
}
