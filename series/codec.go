package series

import (
	"fmt"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/njchilds90/goseries/symbolic"
)

// Record is the wire form of a Series. Coefficients are expression JSON
// documents, parallel to Exponents.
type Record struct {
	Var          string   `msgpack:"var" json:"var"`
	Precision    int      `msgpack:"prec" json:"prec"`
	Exponents    []int32  `msgpack:"exps" json:"exps"`
	Coefficients []string `msgpack:"coeffs" json:"coeffs"`
}

// Record converts s to its wire form.
func (s *Series) Record() (Record, error) {
	rec := Record{
		Var:          s.name,
		Precision:    s.prec,
		Exponents:    make([]int32, 0, s.poly.Len()),
		Coefficients: make([]string, 0, s.poly.Len()),
	}
	for e, c := range s.poly.All() {
		exp, err := safecast.Conv[int32](e)
		if err != nil {
			return Record{}, fmt.Errorf("record: exponent %d: %w", e, err)
		}
		doc, err := symbolic.ToJSON(c)
		if err != nil {
			return Record{}, fmt.Errorf("record: coefficient of degree %d: %w", e, err)
		}
		rec.Exponents = append(rec.Exponents, exp)
		rec.Coefficients = append(rec.Coefficients, doc)
	}
	return rec, nil
}

// Series rebuilds the series a Record describes.
func (r Record) Series() (*Series, error) {
	if r.Precision < 0 {
		return nil, fmt.Errorf("record: precision %d: %w", r.Precision, ErrInvalidPrecision)
	}
	if len(r.Exponents) != len(r.Coefficients) {
		return nil, fmt.Errorf("record: %d exponents for %d coefficients: %w",
			len(r.Exponents), len(r.Coefficients), symbolic.ErrInvalidExpression)
	}
	terms := make(map[int]symbolic.Expr, len(r.Exponents))
	for i, e := range r.Exponents {
		if int(e) >= r.Precision {
			return nil, fmt.Errorf("record: exponent %d at precision %d: %w", e, r.Precision, ErrInvalidPrecision)
		}
		if _, dup := terms[int(e)]; dup {
			return nil, fmt.Errorf("record: exponent %d repeated: %w", e, symbolic.ErrInvalidExpression)
		}
		c, err := symbolic.ParseJSON([]byte(r.Coefficients[i]))
		if err != nil {
			return nil, fmt.Errorf("record: coefficient of degree %d: %w", e, err)
		}
		terms[int(e)] = c
	}
	return &Series{poly: ring.FromMap(r.Var, terms), name: r.Var, prec: r.Precision}, nil
}

// MarshalBinary encodes s as a msgpack Record.
func (s *Series) MarshalBinary() ([]byte, error) {
	rec, err := s.Record()
	if err != nil {
		return nil, err
	}
	return msgpack.Marshal(rec)
}

// UnmarshalBinary decodes a msgpack Record into s.
func (s *Series) UnmarshalBinary(data []byte) error {
	var rec Record
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("record: %w", err)
	}
	decoded, err := rec.Series()
	if err != nil {
		return err
	}
	*s = *decoded
	return nil
}
