package grammar

import (
	"math"
	"strconv"

	"github.com/conneroisu/jexl/internal/value"
)

// Truthy reports whether v is truthy: every value is truthy except
// false, 0, NaN, "", null, and undefined.
func Truthy(v value.Value) bool {
	switch t := v.(type) {
	case value.Bool:
		return bool(t)
	case value.Number:
		f := float64(t)
		return f != 0 && !math.IsNaN(f)
	case value.String:
		return t != ""
	case value.Null, value.Undefined:
		return false
	default:
		return true
	}
}

// ToNumber coerces v to a float64 the way the host's usual numeric
// coercion would: numbers pass through, strings parse (NaN on failure),
// booleans become 0/1, null becomes 0, everything else (undefined,
// arrays, objects) becomes NaN.
func ToNumber(v value.Value) float64 {
	switch t := v.(type) {
	case value.Number:
		return float64(t)
	case value.String:
		f, err := strconv.ParseFloat(string(t), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	case value.Bool:
		if t {
			return 1
		}
		return 0
	case value.Null:
		return 0
	default:
		return math.NaN()
	}
}

// ToStr coerces v to its string form, the way the evaluator's template
// interpolation and `+` operator need: null/undefined become "", other
// values use their Value.String().
func ToStr(v value.Value) string {
	switch v.(type) {
	case value.Null, value.Undefined:
		return ""
	default:
		return v.String()
	}
}

// LooseEqual implements `==`'s cross-tag coercive equality: null and
// undefined are mutually equal; number and string compare by numeric
// value; a boolean against a non-boolean compares by numeric value;
// arrays and objects compare element-wise with LooseEqual; any other
// cross-tag pair is unequal.
func LooseEqual(l, r value.Value) bool {
	if isNullish(l) && isNullish(r) {
		return true
	}
	if isNullish(l) != isNullish(r) {
		return false
	}

	switch lv := l.(type) {
	case value.Bool:
		switch rv := r.(type) {
		case value.Bool:
			return lv == rv
		default:
			return ToNumber(l) == ToNumber(r)
		}
	case value.Number:
		switch rv := r.(type) {
		case value.Number:
			return lv == rv
		case value.String:
			return float64(lv) == ToNumber(r)
		case value.Bool:
			return ToNumber(l) == ToNumber(r)
		default:
			return false
		}
	case value.String:
		switch r.(type) {
		case value.String:
			return lv == r.(value.String)
		case value.Number, value.Bool:
			return ToNumber(l) == ToNumber(r)
		default:
			return false
		}
	case *value.Array:
		rv, ok := r.(*value.Array)
		if !ok || lv.Len() != rv.Len() {
			return false
		}
		for i, e := range lv.Elements() {
			if !LooseEqual(e, rv.Get(i)) {
				return false
			}
		}
		return true
	case *value.Object:
		rv, ok := r.(*value.Object)
		if !ok || lv.Len() != rv.Len() {
			return false
		}
		for _, k := range lv.Keys() {
			lval, _ := lv.Get(k)
			rval, ok := rv.Get(k)
			if !ok || !LooseEqual(lval, rval) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func isNullish(v value.Value) bool {
	switch v.(type) {
	case value.Null, value.Undefined:
		return true
	default:
		return false
	}
}
