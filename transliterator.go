package numeral

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Transliterator substitutes ASCII digits with the digit glyphs of a [Script]
// and back.
// Characters that are not digits pass through unchanged in both directions,
// so the conversion is lossless for any string in standard form.
// The zero value transliterates to and from [Latn], which is the identity.
// Transliterator is designed to be safe for concurrent use by multiple goroutines.
type Transliterator struct {
	script   Script
	local    runes.Transformer
	standard runes.Transformer
}

// NewTransliterator returns a transliterator for the given script.
func NewTransliterator(s Script) Transliterator {
	return Transliterator{
		script:   s,
		local:    runes.Map(func(r rune) rune { return toLocal(s, r) }),
		standard: runes.Map(func(r rune) rune { return toStandard(s, r) }),
	}
}

func toLocal(s Script, r rune) rune {
	if r < '0' || r > '9' {
		return r
	}
	return s.Digit(int(r - '0'))
}

func toStandard(s Script, r rune) rune {
	d, ok := s.DigitValue(r)
	if !ok {
		return r
	}
	return '0' + rune(d) //nolint:gosec
}

// Script returns the script of the local form.
func (t Transliterator) Script() Script {
	return t.script
}

// ToLocal replaces every ASCII digit in s with the corresponding glyph of
// the script.
// The result has the same number of runes as s.
// Invalid UTF-8 sequences are replaced with [utf8.RuneError].
//
// [utf8.RuneError]: https://pkg.go.dev/unicode/utf8#RuneError
func (t Transliterator) ToLocal(s string) string {
	if t.script == Latn {
		return s
	}
	res, _, _ := transform.String(t.local, s)
	return res
}

// ToStandard replaces every digit glyph of the script in s with the
// corresponding ASCII digit.
// The result has the same number of runes as s.
func (t Transliterator) ToStandard(s string) string {
	if t.script == Latn {
		return s
	}
	res, _, _ := transform.String(t.standard, s)
	return res
}

// LocalTransformer returns a [transform.Transformer] performing [Transliterator.ToLocal].
// It can be used with [transform.NewReader] and [transform.NewWriter] to
// transliterate streams.
func (t Transliterator) LocalTransformer() transform.Transformer {
	if t.script == Latn {
		return transform.Nop
	}
	return t.local
}

// StandardTransformer returns a [transform.Transformer] performing [Transliterator.ToStandard].
func (t Transliterator) StandardTransformer() transform.Transformer {
	if t.script == Latn {
		return transform.Nop
	}
	return t.standard
}
