package numeral_test

import (
	"fmt"
	"io"
	"log/slog"
	"math/big"

	"github.com/govalues/decimal"
	"github.com/govalues/numeral"
)

func newFormatter(sym numeral.Symbols) *numeral.Formatter {
	return numeral.NewFormatter(sym, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// In this example, a number typed in Devanagari digits is parsed,
// divided by the arithmetic engine, and displayed back in Devanagari digits.
func Example_displayPipeline() {
	loc := numeral.ParseLocale("hi_IN.utf8")
	tr := loc.Transliterator()
	f := newFormatter(numeral.DefaultSymbols())

	// Keystrokes
	v, ok := f.ParseNumber(tr.ToStandard("२२"))
	if !ok {
		panic("not a number")
	}

	// Arithmetic engine
	i, _ := v.Int()
	r := new(big.Rat).SetFrac(i, big.NewInt(7))

	// Display
	fmt.Println(tr.ToLocal(f.FormatNumber(numeral.NewRat(r))))
	// Output: ३.१४२८५७१४
}

func ExampleParseScript() {
	s, err := numeral.ParseScript("deva")
	if err != nil {
		panic(err)
	}
	fmt.Println(s.Name())
	// Output: Devanagari
}

func ExampleScript_Format() {
	fmt.Printf("%v %q %c\n", numeral.Knda, numeral.Knda, numeral.Knda)
	// Output: knda "knda" ೦
}

func ExampleScriptForLocale() {
	fmt.Println(numeral.ScriptForLocale("ar_EG.utf8"))
	fmt.Println(numeral.ScriptForLocale("ta_IN.utf8"))
	fmt.Println(numeral.ScriptForLocale("en_US.utf8"))
	// Output:
	// arabext
	// tamldec
	// latn
}

func ExampleTransliterator_ToLocal() {
	tr := numeral.NewTransliterator(numeral.Deva)
	fmt.Println(tr.ToLocal("42"))
	fmt.Println(tr.ToLocal("-1.5e+08"))
	// Output:
	// ४२
	// -१.५e+०८
}

func ExampleTransliterator_ToStandard() {
	tr := numeral.NewTransliterator(numeral.Arabext)
	fmt.Println(tr.ToStandard("۱۲۳.۴"))
	// Output: 123.4
}

func ExampleFormatter_FormatNumber() {
	f := newFormatter(numeral.DefaultSymbols())
	fmt.Println(f.FormatNumber(numeral.MustParseDecimal("0.1230")))
	fmt.Println(f.FormatNumber(numeral.NewRat(big.NewRat(2, 3))))
	fmt.Println(f.FormatNumber(numeral.NewBool(true)))
	// Output:
	// 0.123
	// 0.666666667
	// True
}

func ExampleFormatter_SetIntegerBase() {
	f := newFormatter(numeral.DefaultSymbols())
	for _, base := range []int{2, 8, 16, 3} {
		if err := f.SetIntegerBase(base); err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(f.FormatNumber(numeral.NewInt64(252)))
	}
	// Output:
	// 11111100
	// 374
	// fc
	// setting integer base 3: unsupported integer base
}

func ExampleFormatter_FormatDecimal() {
	f := newFormatter(numeral.DefaultSymbols())
	f.SetDigitLimit(4)
	fmt.Println(f.FormatDecimal(decimal.MustParse("3.14159")))
	fmt.Println(f.FormatDecimal(decimal.MustParse("0.0314159")))
	fmt.Println(f.FormatDecimal(decimal.MustParse("2.50")))
	f.SetChopZeros(false)
	fmt.Println(f.FormatDecimal(decimal.MustParse("2.50")))
	// Output:
	// 3.142
	// 0.0314
	// 2.5
	// 2.50
}

func ExampleFormatter_ShortFormat() {
	f := newFormatter(numeral.DefaultSymbols())
	fmt.Println(f.ShortFormat(numeral.NewInt64(123456789)))
	fmt.Println(f.ShortFormat(numeral.NewInt64(1234567)))
	// Output:
	// 1.2e+08
	// 1234567
}

func ExampleFormatter_ParseNumber() {
	sym := numeral.DefaultSymbols()
	sym.Decimal = ","
	f := newFormatter(sym)
	v, ok := f.ParseNumber("12,34")
	fmt.Println(v.Kind(), v, ok)
	v, ok = f.ParseNumber("1234")
	fmt.Println(v.Kind(), v, ok)
	v, ok = f.ParseNumber("12.3.4")
	fmt.Println(v.Kind(), ok)
	// Output:
	// decimal 12.34 true
	// int 1234 true
	// invalid false
}

func ExampleFormatter_FormatAny() {
	f := newFormatter(numeral.DefaultSymbols())
	fmt.Println(f.FormatAny(0.1))
	fmt.Println(f.FormatAny(complex(1, 2)))
	// Output:
	// 0.1
	// Error: unsupported type
}

func ExampleValueOf() {
	v, err := numeral.ValueOf(uint64(18446744073709551615))
	if err != nil {
		panic(err)
	}
	fmt.Println(v.Kind(), v)
	// Output: int 18446744073709551615
}
