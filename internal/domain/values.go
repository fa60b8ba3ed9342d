package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices go over the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// Quantity is a line item quantity as the buyer typed it. Clients send either
// a number or a string, so the raw text is kept and parsed on demand.
type Quantity string

// UnmarshalJSON accepts a JSON number, string or null
func (q *Quantity) UnmarshalJSON(data []byte) error {
	raw, err := unmarshalScalar(data)
	if err != nil {
		return err
	}
	*q = Quantity(raw)
	return nil
}

// Float returns the numeric value, or 0 when the text is not a finite number
func (q Quantity) Float() float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(string(q)), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Amount is a money value as received. Like Quantity it accepts a number or
// a string; unlike Quantity it must be numeric when present.
type Amount string

// UnmarshalJSON accepts a JSON number, string or null
func (a *Amount) UnmarshalJSON(data []byte) error {
	raw, err := unmarshalScalar(data)
	if err != nil {
		return err
	}
	*a = Amount(raw)
	return nil
}

// IsZero reports whether no amount was given
func (a Amount) IsZero() bool {
	return strings.TrimSpace(string(a)) == ""
}

// Money and catalog quantity columns are NUMERIC(14, 2) and NUMERIC(14, 3)
const (
	numericPrecision = 14
	MoneyScale       = 2
	QuantityScale    = 3
)

// Decimal parses the amount as money. It returns nil when no amount was given
// and a validation error naming field when the text is not a number or does
// not fit the money columns.
func (a Amount) Decimal(field string) (*decimal.Decimal, error) {
	return a.decimal(field, MoneyScale)
}

// QuantityDecimal is Decimal for stock quantities, which keep three places
func (a Amount) QuantityDecimal(field string) (*decimal.Decimal, error) {
	return a.decimal(field, QuantityScale)
}

func (a Amount) decimal(field string, scale int32) (*decimal.Decimal, error) {
	if a.IsZero() {
		return nil, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(string(a)))
	if err != nil {
		return nil, NewValidationError("%s must be a valid number", field)
	}
	if d.IsNegative() {
		return nil, NewValidationError("%s cannot be negative", field)
	}
	if !d.Equal(d.Round(scale)) {
		return nil, NewValidationError("%s must have at most %d decimal places", field, scale)
	}
	if d.GreaterThanOrEqual(decimal.New(1, numericPrecision-scale)) {
		return nil, NewValidationError("%s is too large", field)
	}
	return &d, nil
}

// unmarshalScalar returns the text of a JSON number or string, "" for null
func unmarshalScalar(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return "", nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}

// FlexBool is a boolean that also accepts "true"/"false" strings
type FlexBool bool

// UnmarshalJSON accepts a JSON bool, string or null
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*b = false
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseBool(strings.TrimSpace(s))
		if err != nil {
			return err
		}
		*b = FlexBool(v)
		return nil
	}
	var v bool
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*b = FlexBool(v)
	return nil
}

// SumQuantities adds the numeric quantities, counting non-numeric ones as 0.
// A quantity that would overflow the total is counted as 0 too.
func SumQuantities(quantities ...Quantity) float64 {
	var total float64
	for _, q := range quantities {
		next := total + q.Float()
		if math.IsInf(next, 0) {
			continue
		}
		total = next
	}
	return total
}
