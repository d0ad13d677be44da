// Package validator provides a composable set of value predicates used to
// build named type requirements: numeric bounds, string length and shape,
// patterns, choices, collection sizes, UUIDs, e-mail addresses and dates.
//
// Every exported constructor returns a Rule: a name, a Check function over an
// arbitrary value and a human readable message. Checks never panic and never
// coerce: a rule that needs a number reports false for a string, a rule that
// needs a string reports false for a []byte. Numbers of any Go kind (including
// named types such as time.Duration) are compared by value.
//
// # Usage
//
//	rules := []validator.Rule{validator.Positive(), validator.Lte(100)}
//	if failed, ok := validator.First(42, rules...); ok {
//	    // failed.Name, failed.Message
//	}
//
//	err := validator.Apply("", validator.NonEmpty(), validator.MaxLen(8))
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // every violated rule, in order
//	}
//
// # Catalog
//
// Build creates rules by name from declarative parameters, which is how seed
// files describe project-specific requirements:
//
//	rule, err := validator.Build("max_len", 64)
//	rule, err := validator.Build("between", map[string]any{"min": 1, "max": 10})
//
// Parameters are decoded with mapstructure; unknown names wrap ErrUnknownRule
// and malformed parameters wrap ErrInvalidParam.
//
// # Concurrency
//
// Rules capture only their parameters, so a Rule value may be shared and
// evaluated from multiple goroutines.
package validator
