package numeral

import (
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/govalues/decimal"
)

var (
	// ErrUnsupportedBase is returned when an integer base other than 2, 8, 10
	// or 16 is requested.
	ErrUnsupportedBase = errors.New("unsupported integer base")

	// ErrInvalidNumber is returned when a string is not a valid numeral.
	ErrInvalidNumber = errors.New("invalid number")
)

// UnsupportedTypeText is displayed in place of values that cannot be formatted.
const UnsupportedTypeText = "Error: unsupported type"

// shortLen is the maximum length, in runes, of a result of [Formatter.ShortFormat]
// before it switches to scientific notation.
const shortLen = 7

// FormatType selects the notation used for numbers that do not fit the display.
// It is stored in [Settings] for the benefit of the caller and does not change
// the output of the [Formatter].
type FormatType uint8

const (
	FormatExponent   FormatType = 1
	FormatScientific FormatType = 2
)

// String implements the [fmt.Stringer] interface.
func (t FormatType) String() string {
	switch t {
	case FormatExponent:
		return "exponent"
	case FormatScientific:
		return "scientific"
	}
	return "FormatType(" + strconv.Itoa(int(t)) + ")"
}

// Settings holds the formatting policy of a [Formatter].
type Settings struct {
	DigitLimit  int        // maximum number of significant digits
	ChopZeros   bool       // remove trailing zeros from decimals
	IntegerBase int        // base used for integers: 2, 8, 10 or 16
	Format      FormatType // preferred notation, stored only
}

// DefaultSettings returns the settings of a newly created [Formatter]:
// 9 significant digits, trailing zeros removed, integers in base 10.
func DefaultSettings() Settings {
	return Settings{
		DigitLimit:  9,
		ChopZeros:   true,
		IntegerBase: 10,
		Format:      FormatScientific,
	}
}

// Formatter converts values to display strings and back.
// All strings handled by the Formatter are in standard form, that is, they use
// ASCII digits; use a [Transliterator] to convert them to and from the local form.
//
// Formatter is not thread-safe: calls to its setters must not run
// concurrently with any other method.
type Formatter struct {
	settings Settings
	symbols  Symbols
	log      *slog.Logger
}

// NewFormatter returns a formatter with [DefaultSettings].
// The decimal separator of sym is accepted by [Formatter.ParseNumber].
// If log is nil, [slog.Default] is used.
func NewFormatter(sym Symbols, log *slog.Logger) *Formatter {
	if log == nil {
		log = slog.Default()
	}
	return &Formatter{
		settings: DefaultSettings(),
		symbols:  sym,
		log:      log.With("component", "numeral"),
	}
}

// Settings returns a copy of the current settings.
func (f *Formatter) Settings() Settings {
	return f.settings
}

// Symbols returns the symbols the formatter was created with.
func (f *Formatter) Symbols() Symbols {
	return f.symbols
}

// SetDigitLimit sets the maximum number of significant digits displayed
// for decimals.
// The limit is not validated; non-positive limits round decimals to integers.
func (f *Formatter) SetDigitLimit(digits int) {
	f.settings.DigitLimit = digits
	f.log.Debug("digit limit set", "digits", digits)
}

// SetChopZeros sets whether trailing zeros are removed from decimals.
func (f *Formatter) SetChopZeros(chop bool) {
	f.settings.ChopZeros = chop
	f.log.Debug("chop zeros set", "chop", chop)
}

// SetIntegerBase sets the base used for displaying integers.
//
// SetIntegerBase returns an error and keeps the current base if base
// is not 2, 8, 10 or 16.
func (f *Formatter) SetIntegerBase(base int) error {
	if !validBase(base) {
		f.log.Warn("unsupported integer base requested", "base", base)
		return fmt.Errorf("setting integer base %v: %w", base, ErrUnsupportedBase)
	}
	f.settings.IntegerBase = base
	f.log.Debug("integer base set", "base", base)
	return nil
}

// SetFormatType sets the preferred notation.
func (f *Formatter) SetFormatType(t FormatType) {
	f.settings.Format = t
	f.log.Debug("format type set", "format", t)
}

func validBase(base int) bool {
	switch base {
	case 2, 8, 10, 16:
		return true
	}
	return false
}

// FormatAny converts x with [ValueOf] and formats the result with
// [Formatter.FormatNumber].
// Values of unsupported types are displayed as [UnsupportedTypeText].
func (f *Formatter) FormatAny(x any) string {
	v, err := ValueOf(x)
	if err != nil {
		f.log.Debug("formatting failed", "type", fmt.Sprintf("%T", x), "error", err)
		return UnsupportedTypeText
	}
	return f.FormatNumber(v)
}

// FormatNumber returns the display string of v:
//   - Booleans are displayed as "True" or "False".
//   - Display strings are returned unchanged.
//   - Integers, and other numbers without a fractional part, are displayed
//     in the integer base, see [FormatInt].
//   - All other numbers are displayed according to [Formatter.FormatDecimal],
//     or [Formatter.FormatRat] if they do not fit a [decimal.Decimal].
//
// The zero [Value] is displayed as [UnsupportedTypeText].
func (f *Formatter) FormatNumber(v Value) string {
	switch v.Kind() {
	case KindBool:
		if v.b {
			return "True"
		}
		return "False"
	case KindText:
		return v.s
	case KindInt:
		if f.settings.IntegerBase != 10 {
			return f.formatInt(v.i)
		}
		return v.i.String()
	case KindDecimal, KindRat, KindFloat:
		d, err := v.ToDecimal()
		if err != nil {
			return f.formatOverflow(v)
		}
		if d.IsInt() && f.settings.IntegerBase != 10 {
			return f.formatInt(decimalInt(d))
		}
		return f.FormatDecimal(d)
	default:
		return UnsupportedTypeText
	}
}

// formatInt formats i in the current integer base.
func (f *Formatter) formatInt(i *big.Int) string {
	s, err := FormatInt(i, f.settings.IntegerBase)
	if err != nil {
		// Should never happen, the base is validated by SetIntegerBase
		f.log.Error("formatting integer failed", "error", err)
		return i.String()
	}
	return s
}

// formatOverflow formats numbers that are out of the range of [decimal.Decimal].
// Integral values are displayed in the integer base, other values according
// to [Formatter.FormatRat].
// Special float values are displayed as "NaN", "+Inf" and "-Inf".
func (f *Formatter) formatOverflow(v Value) string {
	r, ok := v.rat()
	if !ok {
		x, ok := v.Float64()
		if !ok {
			return UnsupportedTypeText
		}
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	if r.IsInt() {
		return f.formatInt(r.Num())
	}
	return f.FormatRat(r)
}

// FormatInt returns the text representation of i in the given base
// using lower-case letters for digits above 9.
// The result has no prefix indicating the base. Negative numbers have
// a leading minus sign.
//
// FormatInt returns an error if base is not 2, 8, 10 or 16.
func FormatInt(i *big.Int, base int) (string, error) {
	if !validBase(base) {
		return "", fmt.Errorf("formatting %v: %w %v", i, ErrUnsupportedBase, base)
	}
	return i.Text(base), nil
}

// FormatDecimal returns the display string of d.
//   - Integers are displayed without a fractional part.
//   - If chop zeros is set, trailing zeros are removed from the fractional part.
//   - Numbers within the range (-1, 1) are rounded to digit limit digits
//     after the decimal point.
//   - Other numbers are rounded so that at most digit limit significant
//     digits are displayed. If the integer part alone has at least digit limit
//     digits, the number is rounded to digit limit digits after the decimal point.
//
// Rounding is performed using rounding half to even.
func (f *Formatter) FormatDecimal(d decimal.Decimal) string {
	if d.IsInt() {
		return d.Trunc(0).String()
	}
	if f.settings.ChopZeros {
		d = d.Trim(0)
	}
	limit := f.settings.DigitLimit
	scale := limit
	if !d.WithinOne() {
		if roundTo := limit - (d.Prec() - d.Scale()); roundTo > 0 {
			scale = roundTo
		}
	}
	d = d.Round(scale)
	if f.settings.ChopZeros {
		d = d.Trim(0)
	}
	return d.String()
}

// FormatRat is like [Formatter.FormatDecimal] but accepts rationals of any size.
// Rationals with a finite decimal expansion never show more fractional digits
// than the expansion has. Other rationals are rounded as if they had an
// unlimited number of fractional digits.
func (f *Formatter) FormatRat(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	neg := r.Sign() < 0
	num := new(big.Int).Abs(r.Num())
	den := r.Denom()

	limit := f.settings.DigitLimit
	scale := limit
	if num.Cmp(den) >= 0 {
		intDigits := len(new(big.Int).Quo(num, den).String())
		if roundTo := limit - intDigits; roundTo > 0 {
			scale = roundTo
		}
	}
	scale = max(scale, 0)
	if exact, ok := terminatingScale(den); ok {
		scale = min(scale, exact)
	}

	// Rounding half to even
	pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(scale)), nil)
	coef, rem := new(big.Int).QuoRem(num.Mul(num, pow), den, new(big.Int))
	switch rem.Lsh(rem, 1).Cmp(den) {
	case 1:
		coef.Add(coef, big.NewInt(1))
	case 0:
		if coef.Bit(0) == 1 {
			coef.Add(coef, big.NewInt(1))
		}
	}

	text := fixedText(neg, coef, scale)
	if f.settings.ChopZeros && scale > 0 {
		text = strings.TrimRight(text, "0")
		text = strings.TrimSuffix(text, ".")
	}
	return text
}

// terminatingScale returns the number of digits after the decimal point
// needed to write 1/den exactly.
// If the decimal expansion of 1/den is infinite, ok is false.
func terminatingScale(den *big.Int) (scale int, ok bool) {
	twos := int(den.TrailingZeroBits()) //nolint:gosec
	d := new(big.Int).Rsh(den, uint(twos))
	fives := 0
	five := big.NewInt(5)
	for {
		q, m := new(big.Int).QuoRem(d, five, new(big.Int))
		if m.Sign() != 0 {
			break
		}
		d = q
		fives++
	}
	if !d.IsInt64() || d.Int64() != 1 {
		return 0, false
	}
	return max(twos, fives), true
}

// fixedText returns the text of coef * 10^(-scale) with exactly scale digits
// after the decimal point. Zero has no sign.
func fixedText(neg bool, coef *big.Int, scale int) string {
	digits := coef.String()
	if scale > 0 {
		if pad := scale + 1 - len(digits); pad > 0 {
			digits = strings.Repeat("0", pad) + digits
		}
		digits = digits[:len(digits)-scale] + "." + digits[len(digits)-scale:]
	}
	if neg && coef.Sign() != 0 {
		return "-" + digits
	}
	return digits
}

// ShortFormat is like [Formatter.FormatNumber] but switches to scientific
// notation with one fractional digit, such as "1.2e+08", when the result
// is longer than 7 runes.
// Display strings are never switched.
func (f *Formatter) ShortFormat(v Value) string {
	s := f.FormatNumber(v)
	if utf8.RuneCountInString(s) <= shortLen || !v.IsNumber() {
		return s
	}
	if x, ok := v.Float(); ok {
		return fmt.Sprintf("%.1e", x)
	}
	r, _ := v.rat()
	return new(big.Float).SetRat(r).Text('e', 1)
}

// IsInt returns true if v is a number without significant digits after
// the decimal point.
// See also method [Value.IsInt].
func (f *Formatter) IsInt(v Value) bool {
	return v.IsInt()
}

// ParseNumber converts a string in standard form to a value.
// The decimal separator of the formatter is accepted in place of '.'.
// Integers are returned as [KindInt], other numbers as [KindDecimal], or as
// [KindRat] if they have more than 19 significant digits, so no digit is lost.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	1.83e5
//
// If the string is not a valid numeral, ParseNumber returns the zero [Value]
// and false.
func (f *Formatter) ParseNumber(s string) (Value, bool) {
	v, err := f.parseNumber(s)
	if err != nil {
		f.log.Debug("parsing failed", "input", s, "error", err)
		return Value{}, false
	}
	return v, true
}

func (f *Formatter) parseNumber(s string) (Value, error) {
	if sep := f.symbols.Decimal; sep != "" && sep != "." {
		s = strings.ReplaceAll(s, sep, ".")
	}
	s = strings.TrimSpace(s)

	d, err := decimal.Parse(s)
	if err == nil && parsedExactly(d, s) {
		if d.IsInt() {
			return NewInt(decimalInt(d)), nil
		}
		return NewDecimal(d), nil
	}

	// Numbers with more than 19 significant digits
	if !isNumeral(s) {
		return Value{}, fmt.Errorf("parsing %q: %w", s, ErrInvalidNumber)
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Value{}, fmt.Errorf("parsing %q: %w", s, ErrInvalidNumber)
	}
	if r.IsInt() {
		return NewInt(r.Num()), nil
	}
	return NewRat(r), nil
}

// parsedExactly returns true if d equals the value of numeral s,
// that is, if [decimal.Parse] did not round s to fit 19 digits.
func parsedExactly(d decimal.Decimal, s string) bool {
	want, ok := new(big.Rat).SetString(s)
	if !ok {
		return true
	}
	got, ok := new(big.Rat).SetString(d.String())
	return ok && got.Cmp(want) == 0
}

// isNumeral returns true if s consists of the characters of a decimal numeral only.
func isNumeral(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.', r == '+', r == '-', r == 'e', r == 'E':
		default:
			return false
		}
	}
	return true
}
