package validator

import (
	"errors"
	"fmt"
	"regexp"
	"unicode"
)

// Pattern validates that a string matches the regular expression.
// The expression is compiled once, when the rule is built.
func Pattern(pattern string) (Rule, error) {
	regex, err := regexp.Compile(pattern)
	if err != nil {
		return Rule{}, errors.Join(ErrInvalidParam, fmt.Errorf("pattern %q: %w", pattern, err))
	}
	return Rule{
		Name: "pattern",
		Check: func(value any) bool {
			s, ok := toString(value)
			return ok && regex.MatchString(s)
		},
		Message: fmt.Sprintf("must match pattern %s", pattern),
		Params:  map[string]any{"pattern": pattern},
	}, nil
}

// MustPattern is like Pattern but panics on an invalid expression.
func MustPattern(pattern string) Rule {
	rule, err := Pattern(pattern)
	if err != nil {
		panic(err)
	}
	return rule
}

func NoWhitespace() Rule {
	return Rule{
		Name: "no_whitespace",
		Check: func(value any) bool {
			s, ok := toString(value)
			if !ok {
				return false
			}
			for _, char := range s {
				if unicode.IsSpace(char) {
					return false
				}
			}
			return true
		},
		Message: "must not contain whitespace characters",
	}
}

// ASCII validates that a string contains only ASCII characters.
func ASCII() Rule {
	return Rule{
		Name: "ascii",
		Check: func(value any) bool {
			s, ok := toString(value)
			if !ok {
				return false
			}
			for _, char := range s {
				if char > unicode.MaxASCII {
					return false
				}
			}
			return true
		},
		Message: "must contain only ASCII characters",
	}
}
