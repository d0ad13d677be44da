package validator

import "fmt"

// NonZero validates that a numeric value is not zero.
func NonZero() Rule {
	return Rule{
		Name: "non_zero",
		Check: func(value any) bool {
			n, ok := toFloat(value)
			return ok && n != 0
		},
		Message: "must not be zero",
	}
}

// Positive validates that a numeric value is strictly greater than zero.
func Positive() Rule {
	return Rule{
		Name: "positive",
		Check: func(value any) bool {
			n, ok := toFloat(value)
			return ok && n > 0
		},
		Message: "must be > 0",
	}
}

func NonNegative() Rule {
	return Rule{
		Name: "non_negative",
		Check: func(value any) bool {
			n, ok := toFloat(value)
			return ok && n >= 0
		},
		Message: "must be >= 0",
	}
}

// Gt validates that a numeric value is strictly greater than min.
// Integers are compared exactly, also beyond the float64 mantissa.
func Gt[T Numeric](min T) Rule { return gt(min) }

func gt(min any) Rule {
	bound, _ := toNumber(min)
	return Rule{
		Name: "gt",
		Check: func(value any) bool {
			c, ok := compareTo(value, bound)
			return ok && c > 0
		},
		Message: fmt.Sprintf("must be > %v", min),
		Params:  map[string]any{"min": min},
	}
}

// Gte validates that a numeric value is greater than or equal to min.
func Gte[T Numeric](min T) Rule { return gte(min) }

func gte(min any) Rule {
	bound, _ := toNumber(min)
	return Rule{
		Name: "gte",
		Check: func(value any) bool {
			c, ok := compareTo(value, bound)
			return ok && c >= 0
		},
		Message: fmt.Sprintf("must be at least %v", min),
		Params:  map[string]any{"min": min},
	}
}

func Lt[T Numeric](max T) Rule { return lt(max) }

func lt(max any) Rule {
	bound, _ := toNumber(max)
	return Rule{
		Name: "lt",
		Check: func(value any) bool {
			c, ok := compareTo(value, bound)
			return ok && c < 0
		},
		Message: fmt.Sprintf("must be < %v", max),
		Params:  map[string]any{"max": max},
	}
}

// Lte validates that a numeric value is less than or equal to max.
func Lte[T Numeric](max T) Rule { return lte(max) }

func lte(max any) Rule {
	bound, _ := toNumber(max)
	return Rule{
		Name: "lte",
		Check: func(value any) bool {
			c, ok := compareTo(value, bound)
			return ok && c <= 0
		},
		Message: fmt.Sprintf("must be at most %v", max),
		Params:  map[string]any{"max": max},
	}
}

// Between validates that a numeric value lies in the closed range [min, max].
func Between[T Numeric](min, max T) Rule { return between(min, max) }

func between(min, max any) Rule {
	lo, _ := toNumber(min)
	hi, _ := toNumber(max)
	return Rule{
		Name: "between",
		Check: func(value any) bool {
			cl, ok := compareTo(value, lo)
			if !ok || cl < 0 {
				return false
			}
			ch, ok := compareTo(value, hi)
			return ok && ch <= 0
		},
		Message: fmt.Sprintf("must be between %v and %v", min, max),
		Params:  map[string]any{"min": min, "max": max},
	}
}
