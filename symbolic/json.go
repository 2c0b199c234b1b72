package symbolic

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

// ============================================================
// JSON Serialization
// ============================================================

// ErrInvalidExpression is returned when a JSON expression tree is malformed.
var ErrInvalidExpression = errors.New("symbolic: invalid expression")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ToJSON encodes e as a {"type": ...} tree.
func ToJSON(e Expr) (string, error) {
	b, err := json.Marshal(e.toJSON())
	return string(b), err
}

// ToMap returns the JSON tree of e as nested maps.
func ToMap(e Expr) map[string]interface{} { return e.toJSON() }

// ParseJSON decodes a JSON expression tree.
func ParseJSON(data []byte) (Expr, error) {
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExpression, err)
	}
	return FromJSON(m)
}

// FromJSON decodes an expression tree that was unmarshalled into maps.
func FromJSON(data map[string]interface{}) (Expr, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: expression must be an object", ErrInvalidExpression)
	}
	typ, ok := data["type"].(string)
	if !ok || typ == "" {
		return nil, fmt.Errorf("%w: field 'type' must be a non-empty string", ErrInvalidExpression)
	}
	n := node{typ: typ, data: data}

	switch typ {
	case "num":
		return n.number("value")
	case "sym":
		name, err := n.str("name")
		if err != nil {
			return nil, err
		}
		return S(name), nil
	case "add":
		terms, err := n.list("terms")
		if err != nil {
			return nil, err
		}
		return AddOf(terms...), nil
	case "mul":
		factors, err := n.list("factors")
		if err != nil {
			return nil, err
		}
		return MulOf(factors...), nil
	case "pow":
		base, err := n.child("base")
		if err != nil {
			return nil, err
		}
		exp, err := n.child("exp")
		if err != nil {
			return nil, err
		}
		return PowOf(base, exp), nil
	case "func":
		name, err := n.str("name")
		if err != nil {
			return nil, err
		}
		arg, err := n.child("arg")
		if err != nil {
			return nil, err
		}
		return Apply(name, arg), nil
	}
	return nil, fmt.Errorf("%w: unknown expression type %q", ErrInvalidExpression, typ)
}

type node struct {
	typ  string
	data map[string]interface{}
}

func (n node) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidExpression, n.typ, fmt.Sprintf(format, args...))
}

func (n node) str(field string) (string, error) {
	s, ok := n.data[field].(string)
	if !ok || s == "" {
		return "", n.errorf("%q must be a non-empty string", field)
	}
	return s, nil
}

// number accepts "3/4" style strings and plain JSON numbers.
func (n node) number(field string) (Expr, error) {
	r := new(big.Rat)
	switch v := n.data[field].(type) {
	case string:
		if _, ok := r.SetString(v); !ok {
			return nil, n.errorf("invalid value %q", v)
		}
	case float64:
		if _, ok := r.SetString(strconv.FormatFloat(v, 'f', -1, 64)); !ok {
			return nil, n.errorf("invalid value %v", v)
		}
	default:
		return nil, n.errorf("%q must be a string or number", field)
	}
	return &Num{val: r}, nil
}

func (n node) child(field string) (Expr, error) {
	m, ok := n.data[field].(map[string]interface{})
	if !ok {
		return nil, n.errorf("%q must be an object", field)
	}
	e, err := FromJSON(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", n.typ, field, err)
	}
	return e, nil
}

func (n node) list(field string) ([]Expr, error) {
	raw, ok := n.data[field].([]interface{})
	if !ok {
		return nil, n.errorf("%q must be an array", field)
	}
	out := make([]Expr, len(raw))
	for i, it := range raw {
		m, ok := it.(map[string]interface{})
		if !ok {
			return nil, n.errorf("%q[%d] must be an object", field, i)
		}
		e, err := FromJSON(m)
		if err != nil {
			return nil, fmt.Errorf("%s: %s[%d]: %w", n.typ, field, i, err)
		}
		out[i] = e
	}
	return out, nil
}
