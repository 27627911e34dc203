package numeral

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/govalues/decimal"
)

// ErrUnsupportedType is returned when a value of a type other than boolean,
// string, integer, decimal, rational or float is requested for formatting.
var ErrUnsupportedType = errors.New("unsupported type")

var errDecimalOverflow = errors.New("decimal overflow")

// Kind identifies the variant held by a [Value].
type Kind uint8

const (
	KindInvalid Kind = iota // zero value, no number
	KindBool                // boolean result of a comparison
	KindText                // pre-rendered display string, such as an error message
	KindInt                 // integer of arbitrary size
	KindDecimal             // decimal floating-point number
	KindRat                 // rational number
	KindFloat               // binary floating-point number
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindBool:    "bool",
	KindText:    "text",
	KindInt:     "int",
	KindDecimal: "decimal",
	KindRat:     "rat",
	KindFloat:   "float",
}

// String implements the [fmt.Stringer] interface.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value represents a result produced by the arithmetic engine.
// It holds exactly one of a boolean, a display string, an integer,
// a decimal, a rational or a float, as reported by [Value.Kind].
// Its zero value has kind [KindInvalid] and represents "no value".
// Value is immutable and designed to be safe for concurrent use by multiple goroutines.
type Value struct {
	kind Kind
	b    bool
	s    string
	i    *big.Int
	d    decimal.Decimal
	r    *big.Rat
	f    float64
}

// NewBool returns a boolean value.
func NewBool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// NewText returns a value holding a pre-rendered display string.
// Such values are never reformatted.
func NewText(s string) Value {
	return Value{kind: KindText, s: s}
}

// NewInt returns an integer value.
// The argument is copied, so later changes to it do not affect the value.
// A nil argument is treated as zero.
func NewInt(i *big.Int) Value {
	v := new(big.Int)
	if i != nil {
		v.Set(i)
	}
	return Value{kind: KindInt, i: v}
}

// NewInt64 returns an integer value equal to i.
func NewInt64(i int64) Value {
	return Value{kind: KindInt, i: big.NewInt(i)}
}

// NewDecimal returns a decimal value.
func NewDecimal(d decimal.Decimal) Value {
	return Value{kind: KindDecimal, d: d}
}

// NewRat returns a rational value.
// The argument is copied, so later changes to it do not affect the value.
// A nil argument is treated as zero.
func NewRat(r *big.Rat) Value {
	v := new(big.Rat)
	if r != nil {
		v.Set(r)
	}
	return Value{kind: KindRat, r: v}
}

// NewFloat returns a float value.
func NewFloat(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// MustParseDecimal is like [decimal.MustParse] but returns a [Value].
// It simplifies safe initialization of variables holding decimal values.
func MustParseDecimal(s string) Value {
	d, err := decimal.Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseDecimal(%q) failed: %v", s, err))
	}
	return NewDecimal(d)
}

// ValueOf converts a Go value to a [Value].
// The following types are supported: [Value], bool, string, all signed and
// unsigned integer types, [*big.Int], [decimal.Decimal], [*big.Rat],
// float32 and float64.
//
// ValueOf returns [ErrUnsupportedType] for any other type.
func ValueOf(x any) (Value, error) {
	switch x := x.(type) {
	case Value:
		return x, nil
	case bool:
		return NewBool(x), nil
	case string:
		return NewText(x), nil
	case int:
		return NewInt64(int64(x)), nil
	case int8:
		return NewInt64(int64(x)), nil
	case int16:
		return NewInt64(int64(x)), nil
	case int32:
		return NewInt64(int64(x)), nil
	case int64:
		return NewInt64(x), nil
	case uint:
		return NewInt(new(big.Int).SetUint64(uint64(x))), nil
	case uint8:
		return NewInt64(int64(x)), nil
	case uint16:
		return NewInt64(int64(x)), nil
	case uint32:
		return NewInt64(int64(x)), nil
	case uint64:
		return NewInt(new(big.Int).SetUint64(x)), nil
	case *big.Int:
		return NewInt(x), nil
	case decimal.Decimal:
		return NewDecimal(x), nil
	case *big.Rat:
		return NewRat(x), nil
	case float32:
		return NewFloat(float64(x)), nil
	case float64:
		return NewFloat(x), nil
	default:
		return Value{}, fmt.Errorf("converting %T: %w", x, ErrUnsupportedType)
	}
}

// Kind returns the variant held by the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Bool returns the boolean held by the value.
// If the value is not a boolean, ok is false.
func (v Value) Bool() (b, ok bool) {
	return v.b, v.kind == KindBool
}

// Text returns the display string held by the value.
// If the value is not a display string, ok is false.
func (v Value) Text() (s string, ok bool) {
	return v.s, v.kind == KindText
}

// Int returns a copy of the integer held by the value.
// If the value is not an integer, ok is false.
func (v Value) Int() (i *big.Int, ok bool) {
	if v.kind != KindInt {
		return nil, false
	}
	return new(big.Int).Set(v.i), true
}

// Decimal returns the decimal held by the value.
// If the value is not a decimal, ok is false.
// See also method [Value.ToDecimal].
func (v Value) Decimal() (d decimal.Decimal, ok bool) {
	return v.d, v.kind == KindDecimal
}

// Rat returns a copy of the rational held by the value.
// If the value is not a rational, ok is false.
func (v Value) Rat() (r *big.Rat, ok bool) {
	if v.kind != KindRat {
		return nil, false
	}
	return new(big.Rat).Set(v.r), true
}

// Float returns the float held by the value.
// If the value is not a float, ok is false.
// See also method [Value.Float64].
func (v Value) Float() (f float64, ok bool) {
	return v.f, v.kind == KindFloat
}

// IsNumber returns true if the value is an integer, a decimal, a rational or a float.
func (v Value) IsNumber() bool {
	switch v.kind {
	case KindInt, KindDecimal, KindRat, KindFloat:
		return true
	}
	return false
}

// IsInt returns true if the value is a number without significant digits
// after the decimal point.
// Booleans, display strings and special float values are not integers.
func (v Value) IsInt() bool {
	switch v.kind {
	case KindInt:
		return true
	case KindDecimal:
		return v.d.IsInt()
	case KindRat:
		return v.r.IsInt()
	case KindFloat:
		return !math.IsInf(v.f, 0) && v.f == math.Trunc(v.f)
	}
	return false
}

// ToDecimal converts a numeric value to a (possibly rounded) decimal.
//   - Integers are converted exactly.
//   - Rationals are converted by dividing the numerator by the denominator.
//   - Floats are converted using their shortest decimal representation.
//
// ToDecimal returns an error if:
//   - the value is not a number;
//   - the value is a special float value (NaN or Inf);
//   - the integer part of the result has more than [decimal.MaxPrec] digits.
func (v Value) ToDecimal() (decimal.Decimal, error) {
	switch v.kind {
	case KindDecimal:
		return v.d, nil
	case KindInt:
		d, err := decimal.Parse(v.i.String())
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("converting %v: %w", v.i, errDecimalOverflow)
		}
		return d, nil
	case KindRat:
		num, err := decimal.Parse(v.r.Num().String())
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("converting numerator: %w", errDecimalOverflow)
		}
		den, err := decimal.Parse(v.r.Denom().String())
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("converting denominator: %w", errDecimalOverflow)
		}
		d, err := num.Quo(den)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("dividing %v by %v: %w", num, den, err)
		}
		return d, nil
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return decimal.Decimal{}, fmt.Errorf("converting float: special value %v", v.f)
		}
		text := strconv.FormatFloat(v.f, 'f', -1, 64)
		d, err := decimal.Parse(text)
		if err != nil || !parsedExactly(d, text) {
			return decimal.Decimal{}, fmt.Errorf("converting float: %w", errDecimalOverflow)
		}
		return d, nil
	default:
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", v.kind, ErrUnsupportedType)
	}
}

// Float64 returns the nearest binary floating-point number to a numeric value.
// If the value is not a number, ok is false.
// Booleans are converted to 0 and 1.
func (v Value) Float64() (f float64, ok bool) {
	switch v.kind {
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	case KindInt:
		f, _ = new(big.Float).SetInt(v.i).Float64()
		return f, true
	case KindDecimal:
		return v.d.Float64()
	case KindRat:
		f, _ = v.r.Float64()
		return f, true
	case KindFloat:
		return v.f, true
	}
	return 0, false
}

// String implements the [fmt.Stringer] interface and returns the value in
// standard form without applying any formatting policy.
// See also method [Formatter.FormatNumber].
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindText:
		return v.s
	case KindInt:
		return v.i.String()
	case KindDecimal:
		return v.d.String()
	case KindRat:
		return v.r.RatString()
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	}
	return "<invalid>"
}

// rat returns the exact value of a number as a rational.
// Floats are taken at their shortest decimal representation, as in [Value.ToDecimal].
// Special float values and non-numbers are reported with ok set to false.
func (v Value) rat() (*big.Rat, bool) {
	switch v.kind {
	case KindInt:
		return new(big.Rat).SetInt(v.i), true
	case KindDecimal:
		return new(big.Rat).SetString(v.d.String())
	case KindRat:
		return new(big.Rat).Set(v.r), true
	case KindFloat:
		if math.IsInf(v.f, 0) || math.IsNaN(v.f) {
			return nil, false
		}
		return new(big.Rat).SetString(strconv.FormatFloat(v.f, 'f', -1, 64))
	}
	return nil, false
}

// decimalInt returns the integral part of d.
func decimalInt(d decimal.Decimal) *big.Int {
	d = d.Trunc(0)
	i := new(big.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		i.Neg(i)
	}
	return i
}
