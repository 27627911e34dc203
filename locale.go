package numeral

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLocale is the locale assumed when the LANG environment variable is not set.
const DefaultLocale = "en_US.utf8"

// arabicLocales lists the locales that display Extended Arabic-Indic digits.
// Unlike the other scripts, these are matched exactly rather than by prefix.
var arabicLocales = map[string]struct{}{
	"ar_SA.utf8": {},
	"ar_YE.utf8": {},
	"ar_AE.utf8": {},
	"ar_SY.utf8": {},
	"ar_OM.utf8": {},
	"ar_JO.utf8": {},
	"ar_IQ.utf8": {},
	"ar_KW.utf8": {},
	"ar_LB.utf8": {},
	"ar_SD.utf8": {},
	"ar_EG.utf8": {},
	"fa_IR.utf8": {},
}

// Locale represents the locale selected at startup.
// It determines the [Script] used for displaying digits and the
// language used for looking up [Symbols].
// Locale is immutable and designed to be safe for concurrent use by multiple goroutines.
type Locale struct {
	raw    string
	tag    language.Tag
	script Script
}

// ParseLocale converts a POSIX locale identifier, such as "hi_IN.utf8",
// to a locale.
// ParseLocale never fails: identifiers that do not correspond to a valid
// language tag yield [language.Und], and identifiers not found in the
// numeral table yield [Latn].
func ParseLocale(raw string) Locale {
	return Locale{
		raw:    raw,
		tag:    localeTag(raw),
		script: ScriptForLocale(raw),
	}
}

// LocaleFromEnv returns the locale named by the LANG environment variable,
// or [DefaultLocale] if the variable is not set.
func LocaleFromEnv() Locale {
	return localeFromLookup(os.LookupEnv)
}

func localeFromLookup(lookup func(string) (string, bool)) Locale {
	raw, ok := lookup("LANG")
	if !ok {
		raw = DefaultLocale
	}
	return ParseLocale(raw)
}

// ScriptForLocale returns the numeral script for the given POSIX locale identifier.
// Arabic and Farsi locales are matched exactly, all other scripts are matched
// by the 3-character language prefix:
//
//	| Locale                              | Script    |
//	| ----------------------------------- | --------- |
//	| ar_SA, ar_EG, ..., fa_IR (.utf8)    | [Arabext] |
//	| ta_*                                | [Tamldec] |
//	| hi_*, bn_*, gu_*, mr_*              | [Deva]    |
//	| kn_*                                | [Knda]    |
//	| ml_*                                | [Mlym]    |
//	| anything else                       | [Latn]    |
func ScriptForLocale(raw string) Script {
	if _, ok := arabicLocales[canonicalCodeset(raw)]; ok {
		return Arabext
	}
	if len(raw) < 3 {
		return Latn
	}
	switch raw[:3] {
	case "ta_":
		return Tamldec
	case "hi_", "bn_", "gu_", "mr_":
		return Deva
	case "kn_":
		return Knda
	case "ml_":
		return Mlym
	default:
		return Latn
	}
}

// canonicalCodeset rewrites the codeset of a locale identifier to the
// "utf8" spelling, so that "ar_EG.UTF-8" and "ar_EG.utf8" are equivalent.
func canonicalCodeset(raw string) string {
	name, codeset, ok := strings.Cut(raw, ".")
	if !ok {
		return raw
	}
	switch strings.ToLower(codeset) {
	case "utf8", "utf-8":
		return name + ".utf8"
	}
	return raw
}

// localeTag converts a POSIX locale identifier to a BCP 47 language tag.
// The codeset and modifier are dropped and underscores become hyphens.
func localeTag(raw string) language.Tag {
	name, _, _ := strings.Cut(raw, ".")
	name, _, _ = strings.Cut(name, "@")
	name = strings.ReplaceAll(name, "_", "-")
	if name == "" || name == "C" || name == "POSIX" {
		return language.Und
	}
	tag, err := language.Parse(name)
	if err != nil {
		return language.Und
	}
	return tag
}

// String returns the locale identifier the locale was created from.
func (l Locale) String() string {
	return l.raw
}

// Tag returns the language tag of the locale.
func (l Locale) Tag() language.Tag {
	return l.tag
}

// Script returns the numeral script of the locale.
func (l Locale) Script() Script {
	return l.script
}

// WithScript returns a copy of the locale that displays digits in script s.
// The language, and therefore the symbols, are unchanged.
func (l Locale) WithScript(s Script) Locale {
	l.script = s
	return l
}

// Transliterator returns a transliterator for the numeral script of the locale.
func (l Locale) Transliterator() Transliterator {
	return NewTransliterator(l.script)
}

// Symbols returns the separators and operator glyphs for the language of the locale.
func (l Locale) Symbols() Symbols {
	return SymbolsFor(l.tag)
}
