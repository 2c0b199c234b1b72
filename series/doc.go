// Package series expands symbolic expressions into truncated power series.
//
// The package has three layers:
//
//   - Ring is truncated polynomial arithmetic over any coefficient Field:
//     add, multiply, integer powers, differentiation, integration and the
//     series-valued elementary functions (exp, log, sin, cos and their
//     inverse and hyperbolic relatives).
//   - Compose walks a symbolic.Expr and builds its series with those
//     operations, using symbolic expressions as exact coefficients.
//   - Series wraps the result with its variable and precision and renders
//     it as text, LaTeX or a msgpack Record.
//
// Quick start:
//
//	x := symbolic.S("x")
//	s, err := series.Expand(symbolic.ExpOf(x), "x", 4)
//	// s.String() == "1 + x + 1/2*x^2 + 1/6*x^3 + O(x^4)"
package series
