package numeral

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"golang.org/x/text/number"
)

// Symbols holds the locale-dependent strings used around numbers on a display.
type Symbols struct {
	Thousands string // thousands separator, such as "," in "1,234"
	Decimal   string // decimal separator, such as "." in "1.5"
	Mul       string // multiplication sign
	Div       string // division sign
	Equ       string // equals sign
}

const (
	defaultThousands = ","
	defaultDecimal   = "."
	defaultMul       = "×"
	defaultDiv       = "÷"
	defaultEqu       = "="
)

// Translation keys of the operator glyphs.
// A language without a translation renders the key itself, which is longer
// than any acceptable glyph and therefore falls back to the default.
const (
	mulKey = "mul_sym"
	divKey = "div_sym"
	equKey = "equ_sym"
)

// maxGlyphLen is the maximum length of an operator glyph, in runes.
const maxGlyphLen = 3

var symbolCatalog = newSymbolCatalog()

func newSymbolCatalog() catalog.Catalog {
	b := catalog.NewBuilder()
	translations := []struct {
		tag      language.Tag
		key, msg string
	}{
		{language.German, mulKey, "·"},
		{language.German, divKey, ":"},
		{language.Russian, mulKey, "·"},
		{language.Russian, divKey, ":"},
		{language.Norwegian, divKey, ":"},
		{language.Persian, mulKey, "×"},
		{language.Persian, divKey, "÷"},
	}
	for _, t := range translations {
		if err := b.SetString(t.tag, t.key, t.msg); err != nil {
			panic(fmt.Sprintf("SetString(%v, %q, %q) failed: %v", t.tag, t.key, t.msg, err))
		}
	}
	return b
}

// DefaultSymbols returns the symbols used when no locale data is available:
// "," and "." as separators and ×, ÷, = as operator glyphs.
func DefaultSymbols() Symbols {
	return Symbols{
		Thousands: defaultThousands,
		Decimal:   defaultDecimal,
		Mul:       defaultMul,
		Div:       defaultDiv,
		Equ:       defaultEqu,
	}
}

// SymbolsFor returns the symbols for the given language.
// Separators are taken from the [CLDR] number formatting data,
// operator glyphs from the built-in translation catalog.
// Any symbol that is unavailable is replaced by its default,
// see [DefaultSymbols].
// Operator glyphs longer than 3 runes are considered unavailable.
//
// [CLDR]: https://cldr.unicode.org
func SymbolsFor(tag language.Tag) Symbols {
	sym := DefaultSymbols()

	// Separators
	thousands, dec := separators(tag)
	if thousands != "" {
		sym.Thousands = thousands
	}
	if dec != "" {
		sym.Decimal = dec
	}

	// Operator glyphs
	p := message.NewPrinter(tag, message.Catalog(symbolCatalog))
	sym.Mul = glyph(p.Sprintf(mulKey), sym.Mul)
	sym.Div = glyph(p.Sprintf(divKey), sym.Div)
	sym.Equ = glyph(p.Sprintf(equKey), sym.Equ)

	return sym
}

func glyph(s, fallback string) string {
	if n := utf8.RuneCountInString(s); n == 0 || n > maxGlyphLen {
		return fallback
	}
	return s
}

// separators extracts the thousands and decimal separators from the
// localized rendering of a sample number.
// Separators that cannot be identified are returned as empty strings.
func separators(tag language.Tag) (thousands, dec string) {
	p := message.NewPrinter(tag)
	return splitSeparators(p.Sprint(number.Decimal(1234567.5)))
}

// splitSeparators reads the separators off a rendering of 1234567.5.
// Format characters, such as the bidirectional marks of Arabic and Persian,
// are not separators and are removed first.
func splitSeparators(sample string) (thousands, dec string) {
	sample = strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Cf, r) {
			return -1
		}
		return r
	}, sample)

	// Collecting runs of non-digits between digits
	var seps []string
	start := -1
	for i, r := range sample {
		switch {
		case unicode.IsDigit(r) && start >= 0:
			seps = append(seps, sample[start:i])
			start = -1
		case unicode.IsDigit(r):
			// skip
		case i == 0:
			return "", "" // prefix, such as a currency sign
		case start < 0:
			start = i
		}
	}
	if start >= 0 {
		return "", "" // suffix
	}

	switch len(seps) {
	case 0:
		return "", ""
	case 1:
		return "", seps[0]
	}
	thousands, dec = seps[0], seps[len(seps)-1]
	for _, s := range seps[1 : len(seps)-1] {
		if s != thousands {
			return "", dec
		}
	}
	if thousands == dec {
		return "", ""
	}
	return thousands, dec
}
