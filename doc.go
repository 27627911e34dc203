/*
Package numeral implements the display layer of a calculator: it converts
numbers to display strings and back, and writes their digits in the numeral
script of the user's locale.
It leverages the [decimal] package's capabilities for rounding decimal
floating-point numbers and uses [math/big] for integers and rationals of
arbitrary size.

# Features

  - Formatting of booleans, integers, decimals, rationals and floats
  - Configurable number of significant digits and removal of trailing zeros
  - Integers in base 2, 8, 10 or 16 without loss of precision
  - Parsing of user input with the decimal separator of the locale
  - Transliteration of digits to and from six numeral scripts
  - Locale-dependent separators and operator glyphs

# Representation

The package consists of three main types: Value, Formatter and Transliterator.
A [Value] is a tagged union holding a result of the arithmetic engine.
A [Formatter] holds the formatting policy and converts values to strings
in standard form, that is, using the ASCII digits 0-9, and back.
A [Transliterator] converts strings in standard form to the local form,
which uses the digits of a [Script], and back.

The [Script] type is implemented as an integer index into an in-memory array
containing the glyphs of each numbering system.
The script of the process is selected once, from the LANG environment
variable, by [LocaleFromEnv].

# Data Flow

	keystrokes -> Transliterator.ToStandard -> Formatter.ParseNumber -> Value
	Value -> arithmetic engine -> Value
	Value -> Formatter.FormatNumber -> Transliterator.ToLocal -> display

All rounding and parsing decisions operate on the standard form.
Transliteration is purely cosmetic and lossless.

# Rounding

Decimals are rounded to the digit limit of the formatter using
[rounding half to even].
Numbers within the range (-1, 1) keep digit limit digits after the decimal
point, other numbers keep digit limit significant digits in total.

# Errors

Formatting never fails: values that cannot be formatted are displayed as
[UnsupportedTypeText].
Parsing reports invalid input with a boolean rather than an error.
Setters that receive an unsupported integer base return [ErrUnsupportedBase]
and keep the current configuration.

[rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
*/
package numeral
