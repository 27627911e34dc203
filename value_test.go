package numeral

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/govalues/decimal"
)

func TestValueOf(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x        any
			wantKind Kind
			wantStr  string
		}{
			{true, KindBool, "true"},
			{"Error: division by zero", KindText, "Error: division by zero"},
			{int(-5), KindInt, "-5"},
			{int8(-8), KindInt, "-8"},
			{int16(16), KindInt, "16"},
			{int32(32), KindInt, "32"},
			{int64(math.MinInt64), KindInt, "-9223372036854775808"},
			{uint(7), KindInt, "7"},
			{uint8(255), KindInt, "255"},
			{uint16(16), KindInt, "16"},
			{uint32(32), KindInt, "32"},
			{uint64(math.MaxUint64), KindInt, "18446744073709551615"},
			{big.NewInt(252), KindInt, "252"},
			{decimal.MustParse("0.1230"), KindDecimal, "0.1230"},
			{big.NewRat(1, 3), KindRat, "1/3"},
			{float32(0.5), KindFloat, "0.5"},
			{0.1, KindFloat, "0.1"},
			{NewInt64(42), KindInt, "42"},
		}
		for _, tt := range tests {
			got, err := ValueOf(tt.x)
			if err != nil {
				t.Errorf("ValueOf(%v) failed: %v", tt.x, err)
				continue
			}
			if got.Kind() != tt.wantKind {
				t.Errorf("ValueOf(%v).Kind() = %v, want %v", tt.x, got.Kind(), tt.wantKind)
			}
			if got.String() != tt.wantStr {
				t.Errorf("ValueOf(%v).String() = %q, want %q", tt.x, got.String(), tt.wantStr)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []any{
			nil,
			complex(1, 2),
			struct{}{},
			[]int{1},
			new(big.Float),
		}
		for _, tt := range tests {
			_, err := ValueOf(tt)
			if !errors.Is(err, ErrUnsupportedType) {
				t.Errorf("ValueOf(%T) = %v, want %v", tt, err, ErrUnsupportedType)
			}
		}
	})
}

func TestValue_Zero(t *testing.T) {
	var v Value
	if v.Kind() != KindInvalid {
		t.Errorf("Value{}.Kind() = %v, want %v", v.Kind(), KindInvalid)
	}
	if v.IsNumber() {
		t.Errorf("Value{}.IsNumber() = true, want false")
	}
	if v.IsInt() {
		t.Errorf("Value{}.IsInt() = true, want false")
	}
	if _, ok := v.Float64(); ok {
		t.Errorf("Value{}.Float64() did not fail")
	}
	if _, err := v.ToDecimal(); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("Value{}.ToDecimal() = %v, want %v", err, ErrUnsupportedType)
	}
	if got := v.String(); got != "<invalid>" {
		t.Errorf("Value{}.String() = %q, want \"<invalid>\"", got)
	}
}

func TestValue_Copy(t *testing.T) {
	i := big.NewInt(10)
	v := NewInt(i)
	i.SetInt64(20)
	got, ok := v.Int()
	if !ok || got.Int64() != 10 {
		t.Errorf("NewInt(i) changed after i was modified: %v", got)
	}
	got.SetInt64(30)
	if v.String() != "10" {
		t.Errorf("Value.Int() result shares memory with the value: %v", v)
	}

	r := big.NewRat(1, 2)
	w := NewRat(r)
	r.SetInt64(5)
	if w.String() != "1/2" {
		t.Errorf("NewRat(r) changed after r was modified: %v", w)
	}

	if got := NewInt(nil).String(); got != "0" {
		t.Errorf("NewInt(nil) = %q, want \"0\"", got)
	}
	if got := NewRat(nil).String(); got != "0" {
		t.Errorf("NewRat(nil) = %q, want \"0\"", got)
	}
}

func TestValue_Accessors(t *testing.T) {
	if b, ok := NewBool(true).Bool(); !ok || !b {
		t.Errorf("NewBool(true).Bool() = %v, %v, want true, true", b, ok)
	}
	if _, ok := NewText("x").Bool(); ok {
		t.Errorf("NewText(\"x\").Bool() did not fail")
	}
	if s, ok := NewText("x").Text(); !ok || s != "x" {
		t.Errorf("NewText(\"x\").Text() = %q, %v, want \"x\", true", s, ok)
	}
	if _, ok := NewFloat(1).Int(); ok {
		t.Errorf("NewFloat(1).Int() did not fail")
	}
	if d, ok := MustParseDecimal("1.5").Decimal(); !ok || d.String() != "1.5" {
		t.Errorf("MustParseDecimal(\"1.5\").Decimal() = %v, %v, want 1.5, true", d, ok)
	}
	if _, ok := NewInt64(1).Rat(); ok {
		t.Errorf("NewInt64(1).Rat() did not fail")
	}
	if f, ok := NewFloat(2.5).Float(); !ok || f != 2.5 {
		t.Errorf("NewFloat(2.5).Float() = %v, %v, want 2.5, true", f, ok)
	}
}

func TestMustParseDecimal(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustParseDecimal(\"x\") did not panic")
		}
	}()
	MustParseDecimal("x")
}

func TestValue_IsInt(t *testing.T) {
	tests := []struct {
		v    Value
		want bool
	}{
		{NewBool(true), false},
		{NewText("1"), false},
		{NewInt64(0), true},
		{NewInt64(-7), true},
		{MustParseDecimal("12.000"), true},
		{MustParseDecimal("12.001"), false},
		{NewRat(big.NewRat(4, 2)), true},
		{NewRat(big.NewRat(1, 3)), false},
		{NewFloat(3), true},
		{NewFloat(3.5), false},
		{NewFloat(1e300), true},
		{NewFloat(math.Inf(1)), false},
		{NewFloat(math.NaN()), false},
	}
	for _, tt := range tests {
		got := tt.v.IsInt()
		if got != tt.want {
			t.Errorf("%v.IsInt() = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestValue_ToDecimal(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			v    Value
			want string
		}{
			{NewInt64(-42), "-42"},
			{MustParseDecimal("0.1230"), "0.1230"},
			{NewRat(big.NewRat(1, 4)), "0.25"},
			{NewRat(big.NewRat(-3, 2)), "-1.5"},
			{NewRat(big.NewRat(1, 3)), "0.3333333333333333333"},
			{NewFloat(0.1), "0.1"},
			{NewFloat(-2.5), "-2.5"},
			{NewFloat(1e18), "1000000000000000000"},
		}
		for _, tt := range tests {
			got, err := tt.v.ToDecimal()
			if err != nil {
				t.Errorf("%v.ToDecimal() failed: %v", tt.v, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("%v.ToDecimal() = %q, want %q", tt.v, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		huge, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
		tests := []Value{
			{},
			NewBool(true),
			NewText("1"),
			NewInt(huge),
			NewRat(new(big.Rat).SetFrac(huge, big.NewInt(7))),
			NewFloat(1e300),
			NewFloat(1e-300),
			NewFloat(1.2345678901234567e-10),
			NewFloat(math.Inf(-1)),
			NewFloat(math.NaN()),
		}
		for _, tt := range tests {
			_, err := tt.ToDecimal()
			if err == nil {
				t.Errorf("%v.ToDecimal() did not fail", tt)
			}
		}
	})
}

func TestValue_rat(t *testing.T) {
	huge, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			v    Value
			want string
		}{
			{NewInt(huge), "123456789012345678901234567890/1"},
			{MustParseDecimal("-0.1230"), "-123/1000"},
			{NewRat(big.NewRat(2, 6)), "1/3"},
			{NewFloat(0.1), "1/10"},
			{NewFloat(1e-30), "1/1000000000000000000000000000000"},
		}
		for _, tt := range tests {
			got, ok := tt.v.rat()
			if !ok {
				t.Errorf("%v.rat() failed", tt.v)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("%v.rat() = %q, want %q", tt.v, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []Value{
			{},
			NewBool(true),
			NewText("1"),
			NewFloat(math.Inf(1)),
			NewFloat(math.NaN()),
		}
		for _, tt := range tests {
			if _, ok := tt.rat(); ok {
				t.Errorf("%v.rat() did not fail", tt)
			}
		}
	})

	t.Run("copy", func(t *testing.T) {
		r := big.NewRat(1, 3)
		v := NewRat(r)
		got, _ := v.rat()
		got.SetInt64(5)
		if v.String() != "1/3" {
			t.Errorf("rat() result shares memory with the value, value = %v", v)
		}
	})
}

func TestValue_Float64(t *testing.T) {
	tests := []struct {
		v    Value
		want float64
	}{
		{NewBool(false), 0},
		{NewBool(true), 1},
		{NewInt64(123456789), 123456789},
		{MustParseDecimal("0.25"), 0.25},
		{NewRat(big.NewRat(3, 4)), 0.75},
		{NewFloat(-1.5), -1.5},
	}
	for _, tt := range tests {
		got, ok := tt.v.Float64()
		if !ok || got != tt.want {
			t.Errorf("%v.Float64() = %v, %v, want %v, true", tt.v, got, ok, tt.want)
		}
	}
	if _, ok := NewText("1").Float64(); ok {
		t.Errorf("NewText(\"1\").Float64() did not fail")
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{KindInvalid, "invalid"},
		{KindBool, "bool"},
		{KindText, "text"},
		{KindInt, "int"},
		{KindDecimal, "decimal"},
		{KindRat, "rat"},
		{KindFloat, "float"},
		{Kind(42), "Kind(42)"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}
