package z3

import (
	"math/big"
	"strings"

	"github.com/benbjohnson/smtfuzz"
)

// normalizeBVNumeral parses value in base and returns it as an unsigned
// integer of width bits. Negative decimals are read as two's complement and
// must fit in a signed integer of width bits. Values that do not fit are
// rejected rather than truncated.
func normalizeBVNumeral(value string, base smtfuzz.Base, width uint32) (*big.Int, error) {
	const op = "MkValueBase"

	switch base {
	case smtfuzz.BIN, smtfuzz.DEC, smtfuzz.HEX:
	default:
		return nil, smtfuzz.Errorf(op, base.String(), "unsupported numeral base")
	}
	if width == 0 {
		return nil, smtfuzz.Errorf(op, value, "zero bit-vector width")
	}

	digits := strings.TrimPrefix(value, "+")
	if digits == "" || strings.HasPrefix(digits, "+") {
		return nil, smtfuzz.Errorf(op, value, "invalid %s numeral", base)
	}
	neg := strings.HasPrefix(digits, "-")
	if neg && base != smtfuzz.DEC {
		return nil, smtfuzz.Errorf(op, value, "negative %s numeral", base)
	}

	v, ok := new(big.Int).SetString(digits, int(base))
	if !ok {
		return nil, smtfuzz.Errorf(op, value, "invalid %s numeral", base)
	}

	limit := new(big.Int).Lsh(big.NewInt(1), uint(width))
	if v.Sign() < 0 {
		min := new(big.Int).Rsh(limit, 1)
		if new(big.Int).Neg(v).Cmp(min) > 0 {
			return nil, smtfuzz.Errorf(op, value, "numeral does not fit in %d bits", width)
		}
		v.Add(v, limit)
	} else if v.Cmp(limit) >= 0 {
		return nil, smtfuzz.Errorf(op, value, "numeral does not fit in %d bits", width)
	}
	return v, nil
}

// bvSpecialValue returns the unsigned value of a bit-vector special value.
func bvSpecialValue(kind smtfuzz.SpecialValueKind, width uint32) (*big.Int, bool) {
	one := big.NewInt(1)
	switch kind {
	case smtfuzz.SpecialValueBVZero:
		return new(big.Int), true
	case smtfuzz.SpecialValueBVOne:
		return one, true
	case smtfuzz.SpecialValueBVOnes:
		v := new(big.Int).Lsh(one, uint(width))
		return v.Sub(v, one), true
	case smtfuzz.SpecialValueBVMinSigned:
		return new(big.Int).Lsh(one, uint(width-1)), true
	case smtfuzz.SpecialValueBVMaxSigned:
		v := new(big.Int).Lsh(one, uint(width-1))
		return v.Sub(v, one), true
	default:
		return nil, false
	}
}
