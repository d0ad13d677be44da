package validator

import (
	"cmp"
	"math"
	"reflect"
	"sort"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// toFloat reports the numeric value of v as float64.
// Only integer, unsigned and float kinds are numbers; bool is not.
func toFloat(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// number holds a numeric value in the widest type of its family, so integers
// keep full precision when compared.
type number struct {
	kind reflect.Kind // reflect.Int64, reflect.Uint64 or reflect.Float64
	i    int64
	u    uint64
	f    float64
}

func toNumber(v any) (number, bool) {
	if v == nil {
		return number{}, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{kind: reflect.Int64, i: rv.Int()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return number{kind: reflect.Uint64, u: rv.Uint()}, true
	case reflect.Float32, reflect.Float64:
		return number{kind: reflect.Float64, f: rv.Float()}, true
	default:
		return number{}, false
	}
}

// compareNumbers orders a and b exactly across integer, unsigned and float
// kinds. It reports false when either side is NaN.
func compareNumbers(a, b number) (int, bool) {
	switch {
	case a.kind == reflect.Int64 && b.kind == reflect.Int64:
		return cmp.Compare(a.i, b.i), true
	case a.kind == reflect.Uint64 && b.kind == reflect.Uint64:
		return cmp.Compare(a.u, b.u), true
	case a.kind == reflect.Int64 && b.kind == reflect.Uint64:
		if a.i < 0 {
			return -1, true
		}
		return cmp.Compare(uint64(a.i), b.u), true
	case a.kind == reflect.Uint64 && b.kind == reflect.Int64:
		c, ok := compareNumbers(b, a)
		return -c, ok
	case a.kind == reflect.Float64 && b.kind == reflect.Float64:
		if math.IsNaN(a.f) || math.IsNaN(b.f) {
			return 0, false
		}
		return cmp.Compare(a.f, b.f), true
	case a.kind == reflect.Float64:
		c, ok := compareIntFloat(b, a.f)
		return -c, ok
	default:
		return compareIntFloat(a, b.f)
	}
}

func compareIntFloat(a number, f float64) (int, bool) {
	switch {
	case math.IsNaN(f):
		return 0, false
	case math.IsInf(f, 1):
		return -1, true
	case math.IsInf(f, -1):
		return 1, true
	}

	whole := math.Trunc(f)
	var c int
	if a.kind == reflect.Uint64 {
		switch {
		case whole < 0:
			return 1, true
		case whole >= math.Exp2(64):
			return -1, true
		}
		c = cmp.Compare(a.u, uint64(whole))
	} else {
		switch {
		case whole < -math.Exp2(63):
			return 1, true
		case whole >= math.Exp2(63):
			return -1, true
		}
		c = cmp.Compare(a.i, int64(whole))
	}
	if c != 0 {
		return c, true
	}
	// a equals the integral part; the fraction decides.
	switch frac := f - whole; {
	case frac > 0:
		return -1, true
	case frac < 0:
		return 1, true
	default:
		return 0, true
	}
}

// compareTo orders value against bound. It reports false for non-numbers.
func compareTo(value any, bound number) (int, bool) {
	n, ok := toNumber(value)
	if !ok {
		return 0, false
	}
	return compareNumbers(n, bound)
}

// toString reports the string value of v, including named string types.
func toString(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}

// lengthOf reports the number of items in a slice, array, map, channel or string.
func lengthOf(v any) (int, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan, reflect.String:
		return rv.Len(), true
	default:
		return 0, false
	}
}

// equalValues compares two values, treating numbers of different kinds as equal
// when they hold the same value.
func equalValues(a, b any) bool {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		return af == bf
	}
	return reflect.DeepEqual(a, b)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
