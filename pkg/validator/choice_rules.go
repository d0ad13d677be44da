package validator

import "fmt"

// OneOf validates that the value equals one of the options.
// Numbers compare by value regardless of their Go kind.
func OneOf(options ...any) Rule {
	return Rule{
		Name: "one_of",
		Check: func(value any) bool {
			for _, option := range options {
				if equalValues(value, option) {
					return true
				}
			}
			return false
		},
		Message: fmt.Sprintf("must be one of: %v", options),
		Params:  map[string]any{"options": options},
	}
}

func NoneOf(options ...any) Rule {
	return Rule{
		Name: "none_of",
		Check: func(value any) bool {
			for _, option := range options {
				if equalValues(value, option) {
					return false
				}
			}
			return true
		},
		Message: fmt.Sprintf("must not be one of: %v", options),
		Params:  map[string]any{"options": options},
	}
}
