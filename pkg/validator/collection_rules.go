package validator

import "fmt"

// MinItems validates the length of a slice, array, map or string.
func MinItems(min int) Rule {
	return Rule{
		Name: "min_items",
		Check: func(value any) bool {
			n, ok := lengthOf(value)
			return ok && n >= min
		},
		Message: fmt.Sprintf("must have at least %d items", min),
		Params:  map[string]any{"min": min},
	}
}

func MaxItems(max int) Rule {
	return Rule{
		Name: "max_items",
		Check: func(value any) bool {
			n, ok := lengthOf(value)
			return ok && n <= max
		},
		Message: fmt.Sprintf("must have at most %d items", max),
		Params:  map[string]any{"max": max},
	}
}

// Required validates that a collection holds at least one item.
func Required() Rule {
	return Rule{
		Name: "required",
		Check: func(value any) bool {
			n, ok := lengthOf(value)
			return ok && n > 0
		},
		Message: "must not be empty",
	}
}
