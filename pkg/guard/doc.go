// Package guard wraps Go functions so that their arguments are checked
// against named requirements before the function runs.
//
// Each Go parameter gets one annotation: Param names a requirement in the
// registry, ParamOf supplies a requirement directly, and Unchecked leaves the
// parameter unannotated. Annotations may carry defaults that are used, and
// validated, whenever the caller omits the argument.
//
//	add := guard.MustWrap(reg, func(a int, b float64) float64 {
//	    return float64(a) + b
//	}, guard.Param("a", "int"), guard.Param("b", "float"))
//
//	sum, err := guard.Result[float64](add.Call(2, 3.0)) // 5.0, nil
//	_, err = add.Call("2", 3.0)                         // *contract.TypeMismatch
//
// Arguments are bound positionally and then by keyword (CallKw). Every
// argument is validated before the wrapped function is invoked, so a
// mismatch never produces partial side effects. Values are never coerced: an
// argument must also be assignable to the Go parameter type.
//
// A *Func implements contract.Invoker and therefore satisfies the callable
// requirement.
package guard
