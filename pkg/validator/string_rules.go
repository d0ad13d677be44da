package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// NonEmpty validates that a string is not empty after trimming whitespace.
func NonEmpty() Rule {
	return Rule{
		Name: "non_empty",
		Check: func(value any) bool {
			s, ok := toString(value)
			return ok && strings.TrimSpace(s) != ""
		},
		Message: "must not be empty",
	}
}

// MinLen validates the rune count of a string.
func MinLen(min int) Rule {
	return Rule{
		Name: "min_len",
		Check: func(value any) bool {
			s, ok := toString(value)
			return ok && utf8.RuneCountInString(s) >= min
		},
		Message: fmt.Sprintf("must be at least %d characters long", min),
		Params:  map[string]any{"min": min},
	}
}

func MaxLen(max int) Rule {
	return Rule{
		Name: "max_len",
		Check: func(value any) bool {
			s, ok := toString(value)
			return ok && utf8.RuneCountInString(s) <= max
		},
		Message: fmt.Sprintf("must be at most %d characters long", max),
		Params:  map[string]any{"max": max},
	}
}

func Len(exact int) Rule {
	return Rule{
		Name: "len",
		Check: func(value any) bool {
			s, ok := toString(value)
			return ok && utf8.RuneCountInString(s) == exact
		},
		Message: fmt.Sprintf("must be exactly %d characters long", exact),
		Params:  map[string]any{"len": exact},
	}
}

// NFC validates that a string is already in Unicode normalization form C,
// so visually identical identifiers compare equal byte for byte.
func NFC() Rule {
	return Rule{
		Name: "nfc",
		Check: func(value any) bool {
			s, ok := toString(value)
			return ok && norm.NFC.IsNormalString(s)
		},
		Message: "must be NFC normalized",
	}
}
