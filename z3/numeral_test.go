package z3

import (
	"errors"
	"math/big"
	"testing"

	"github.com/benbjohnson/smtfuzz"
)

func TestNormalizeBVNumeral(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		for _, tt := range []struct {
			value string
			base  smtfuzz.Base
			width uint32
			want  string
		}{
			{"0", smtfuzz.BIN, 1, "0"},
			{"1", smtfuzz.BIN, 1, "1"},
			{"11111111", smtfuzz.BIN, 8, "255"},
			{"00000001", smtfuzz.BIN, 8, "1"},
			{"255", smtfuzz.DEC, 8, "255"},
			{"+7", smtfuzz.DEC, 8, "7"},
			{"-1", smtfuzz.DEC, 8, "255"},
			{"-128", smtfuzz.DEC, 8, "128"},
			{"-1", smtfuzz.DEC, 1, "1"},
			{"ff", smtfuzz.HEX, 8, "255"},
			{"FF", smtfuzz.HEX, 8, "255"},
			{"ffffffffffffffff", smtfuzz.HEX, 64, "18446744073709551615"},
			{"1ffffffffffffffff", smtfuzz.HEX, 65, "36893488147419103231"},
		} {
			got, err := normalizeBVNumeral(tt.value, tt.base, tt.width)
			if err != nil {
				t.Fatalf("%s/%s/%d: %s", tt.value, tt.base, tt.width, err)
			} else if got.String() != tt.want {
				t.Fatalf("%s/%s/%d: got %s, want %s", tt.value, tt.base, tt.width, got, tt.want)
			}
		}
	})

	t.Run("Err", func(t *testing.T) {
		for _, tt := range []struct {
			value string
			base  smtfuzz.Base
			width uint32
		}{
			{"", smtfuzz.DEC, 8},
			{"+", smtfuzz.DEC, 8},
			{"++1", smtfuzz.DEC, 8},
			{"2", smtfuzz.BIN, 8},
			{"0x1", smtfuzz.HEX, 8},
			{"-1", smtfuzz.HEX, 8},
			{"-1", smtfuzz.BIN, 8},
			{"256", smtfuzz.DEC, 8},
			{"-129", smtfuzz.DEC, 8},
			{"-2", smtfuzz.DEC, 1},
			{"100", smtfuzz.HEX, 8},
			{"1", smtfuzz.DEC, 0},
			{"1", smtfuzz.Base(8), 8},
		} {
			if _, err := normalizeBVNumeral(tt.value, tt.base, tt.width); !errors.Is(err, smtfuzz.ErrConfig) {
				t.Fatalf("%q/%s/%d: unexpected error: %v", tt.value, tt.base, tt.width, err)
			}
		}
	})
}

func TestBVSpecialValue(t *testing.T) {
	for _, tt := range []struct {
		kind  smtfuzz.SpecialValueKind
		width uint32
		want  int64
	}{
		{smtfuzz.SpecialValueBVZero, 1, 0},
		{smtfuzz.SpecialValueBVOne, 1, 1},
		{smtfuzz.SpecialValueBVOnes, 1, 1},
		{smtfuzz.SpecialValueBVMinSigned, 1, 1},
		{smtfuzz.SpecialValueBVMaxSigned, 1, 0},
		{smtfuzz.SpecialValueBVOnes, 8, 255},
		{smtfuzz.SpecialValueBVMinSigned, 8, 128},
		{smtfuzz.SpecialValueBVMaxSigned, 8, 127},
	} {
		got, ok := bvSpecialValue(tt.kind, tt.width)
		if !ok {
			t.Fatalf("%s/%d: not a bit-vector special value", tt.kind, tt.width)
		} else if got.Cmp(big.NewInt(tt.want)) != 0 {
			t.Fatalf("%s/%d: got %s, want %d", tt.kind, tt.width, got, tt.want)
		}
	}

	if _, ok := bvSpecialValue(smtfuzz.SpecialValueFPNaN, 8); ok {
		t.Fatal("expected floating-point kind to be rejected")
	}
}
