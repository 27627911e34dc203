package numeral

import (
	"errors"
	"fmt"
	"strings"
)

//go:generate go run scripts/numeral/codegen.go

// Script type represents a decimal numbering system, that is, a set of ten
// digit glyphs used to display numbers.
// The zero value is [Latn], which corresponds to the ASCII digits 0-9.
//
// Script is implemented as an integer index into an in-memory array that
// stores properties of the numbering system, such as its [CLDR] identifier
// and the code point of its zero digit.
// This design ensures safe concurrency for multiple goroutines accessing
// the same Script value.
//
// [CLDR]: https://github.com/unicode-org/cldr/blob/main/common/supplemental/numberingSystems.xml
type Script uint8

// ErrInvalidScript is returned when a string does not name a supported script.
var ErrInvalidScript = errors.New("invalid numeral script")

// ParseScript converts a string to a script.
// The input string must be a CLDR numbering system identifier in any case:
//
//	latn
//	Deva
//	KNDA
//
// ParseScript returns an error if the string does not represent a supported script.
func ParseScript(code string) (Script, error) {
	s, ok := scriptLookup[strings.ToLower(code)]
	if !ok {
		return Latn, ErrInvalidScript
	}
	return s, nil
}

// MustParseScript is like [ParseScript] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding scripts.
func MustParseScript(code string) Script {
	s, err := ParseScript(code)
	if err != nil {
		panic(fmt.Sprintf("ParseScript(%q) failed: %v", code, err))
	}
	return s
}

// Scripts returns all supported scripts, starting with [Latn].
func Scripts() []Script {
	all := make([]Script, len(codeLookup))
	for i := range all {
		all[i] = Script(i) //nolint:gosec
	}
	return all
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the Script value.
// See also method [Script.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (s Script) String() string {
	return s.Code()
}

// Code returns the CLDR identifier of the numbering system, such as "deva".
// This method always returns a valid code.
func (s Script) Code() string {
	return codeLookup[s]
}

// Name returns the English name of the script, such as "Devanagari".
func (s Script) Name() string {
	return nameLookup[s]
}

// Zero returns the glyph used for digit 0.
func (s Script) Zero() rune {
	return zeroLookup[s]
}

// Digit returns the glyph for the decimal digit d.
// Digit panics if d is not within the range [0, 9].
func (s Script) Digit(d int) rune {
	if d < 0 || d > 9 {
		panic(fmt.Sprintf("%v.Digit(%v) failed: digit out of range", s, d))
	}
	return s.Zero() + rune(d) //nolint:gosec
}

// DigitValue returns the numeric value of glyph r.
// If r is not one of the ten glyphs of the script, ok is false.
func (s Script) DigitValue(r rune) (d int, ok bool) {
	d = int(r - s.Zero())
	if d < 0 || d > 9 {
		return 0, false
	}
	return d, true
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseScript].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (s *Script) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*s, err = ParseScript(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Latn, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a CLDR identifier.
// See also method [Script.Code].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (s Script) MarshalJSON() ([]byte, error) {
	code := s.Code()
	text := make([]byte, 0, len(code)+2)
	text = append(text, '"')
	text = append(text, code...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseScript].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (s *Script) UnmarshalText(text []byte) error {
	var err error
	*s, err = ParseScript(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Latn, err)
	}
	return nil
}

// AppendText implements the [encoding.TextAppender] interface.
// See also method [Script.Code].
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (s Script) AppendText(text []byte) ([]byte, error) {
	return append(text, s.Code()...), nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// See also method [Script.Code].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (s Script) MarshalText() ([]byte, error) {
	return s.AppendText(nil)
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example | Description      |
//	| ------ | ------- | ---------------- |
//	| %s, %v | deva    | Script           |
//	| %q     | "deva"  | Quoted script    |
//	| %c     | ०       | Zero digit glyph |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (s Script) Format(state fmt.State, verb rune) {
	// Script symbols
	var text string
	switch verb {
	case 'c', 'C':
		text = string(s.Zero())
	default:
		text = s.Code()
	}
	textlen := len([]rune(text))

	// Opening and closing quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Calculating padding
	width := lquote + textlen + tquote
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		default:
			lspaces = w - width
		}
	}

	buf := make([]byte, 0, lspaces+lquote+len(text)+tquote+tspaces)

	// Leading spaces
	for range lspaces {
		buf = append(buf, ' ')
	}

	// Opening quote
	for range lquote {
		buf = append(buf, '"')
	}

	// Script symbols
	buf = append(buf, text...)

	// Closing quote
	for range tquote {
		buf = append(buf, '"')
	}

	// Trailing spaces
	for range tspaces {
		buf = append(buf, ' ')
	}

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'c', 'C':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(numeral.Script="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}
