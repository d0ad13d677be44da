package validator

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/mitchellh/mapstructure"
)

// Factory builds a rule from a declarative parameter, as found in a seed file.
type Factory func(param any) (Rule, error)

var catalog = map[string]Factory{
	"non_empty":     noParam(NonEmpty),
	"non_zero":      noParam(NonZero),
	"positive":      noParam(Positive),
	"non_negative":  noParam(NonNegative),
	"ascii":         noParam(ASCII),
	"no_whitespace": noParam(NoWhitespace),
	"nfc":           noParam(NFC),
	"uuid":          noParam(UUID),
	"non_nil_uuid":  noParam(NonNilUUID),
	"email":         noParam(Email),
	"required":      noParam(Required),
	"past":          noParam(Past),
	"future":        noParam(Future),
	"gt":            boundParam(gt),
	"gte":           boundParam(gte),
	"lt":            boundParam(lt),
	"lte":           boundParam(lte),
	"min_len":       countParam(MinLen),
	"max_len":       countParam(MaxLen),
	"len":           countParam(Len),
	"min_items":     countParam(MinItems),
	"max_items":     countParam(MaxItems),
	"uuid_version":  countParam(UUIDVersion),
	"between":       buildBetween,
	"pattern":       buildPattern,
	"one_of":        listParam(OneOf),
	"none_of":       listParam(NoneOf),
}

// Build constructs the catalogued rule called name.
// Rules without parameters expect a nil param.
func Build(name string, param any) (Rule, error) {
	factory, ok := catalog[name]
	if !ok {
		return Rule{}, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
	rule, err := factory(param)
	if err != nil {
		return Rule{}, fmt.Errorf("rule %q: %w", name, err)
	}
	return rule, nil
}

// Catalog returns the names of all rules Build understands, sorted.
func Catalog() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func decodeParam(param any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(param); err != nil {
		return errors.Join(ErrInvalidParam, err)
	}
	return nil
}

func noParam(build func() Rule) Factory {
	return func(param any) (Rule, error) {
		if param != nil {
			return Rule{}, fmt.Errorf("%w: takes no parameter, got %v", ErrInvalidParam, param)
		}
		return build(), nil
	}
}

// boundParam keeps the bound in the type it was decoded as, so integer
// bounds are not rounded through float64.
func boundParam(build func(any) Rule) Factory {
	return func(param any) (Rule, error) {
		n, ok := toNumber(param)
		if !ok {
			return Rule{}, fmt.Errorf("%w: expected a number, got %T", ErrInvalidParam, param)
		}
		if _, ok := compareNumbers(n, n); !ok {
			return Rule{}, fmt.Errorf("%w: bound is NaN", ErrInvalidParam)
		}
		return build(param), nil
	}
}

func countParam(build func(int) Rule) Factory {
	return func(param any) (Rule, error) {
		f, ok := toFloat(param)
		if !ok || f != math.Trunc(f) {
			return Rule{}, fmt.Errorf("%w: expected an integer, got %v", ErrInvalidParam, param)
		}
		var n int
		if err := decodeParam(param, &n); err != nil {
			return Rule{}, err
		}
		if n < 0 {
			return Rule{}, fmt.Errorf("%w: must not be negative, got %d", ErrInvalidParam, n)
		}
		return build(n), nil
	}
}

func listParam(build func(...any) Rule) Factory {
	return func(param any) (Rule, error) {
		var options []any
		if err := decodeParam(param, &options); err != nil {
			return Rule{}, err
		}
		if len(options) == 0 {
			return Rule{}, fmt.Errorf("%w: expected a non-empty list", ErrInvalidParam)
		}
		return build(options...), nil
	}
}

func buildPattern(param any) (Rule, error) {
	pattern, ok := param.(string)
	if !ok {
		return Rule{}, fmt.Errorf("%w: expected a string, got %T", ErrInvalidParam, param)
	}
	return Pattern(pattern)
}

type betweenParam struct {
	Min any `mapstructure:"min"`
	Max any `mapstructure:"max"`
}

func buildBetween(param any) (Rule, error) {
	if _, ok := param.(map[string]any); !ok {
		return Rule{}, fmt.Errorf("%w: expected {min, max}, got %T", ErrInvalidParam, param)
	}
	var p betweenParam
	if err := decodeParam(param, &p); err != nil {
		return Rule{}, err
	}
	lo, lok := toNumber(p.Min)
	hi, hok := toNumber(p.Max)
	if !lok || !hok {
		return Rule{}, fmt.Errorf("%w: min and max must be numbers, got %T and %T", ErrInvalidParam, p.Min, p.Max)
	}
	c, ok := compareNumbers(lo, hi)
	if !ok {
		return Rule{}, fmt.Errorf("%w: bound is NaN", ErrInvalidParam)
	}
	if c > 0 {
		return Rule{}, fmt.Errorf("%w: min %v is greater than max %v", ErrInvalidParam, p.Min, p.Max)
	}
	return between(p.Min, p.Max), nil
}
