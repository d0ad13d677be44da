package contract

import "reflect"

// CallableName is the reserved name of the invocability requirement.
const CallableName = "callable"

// Invoker is implemented by values that can be invoked with dynamic arguments,
// such as guarded functions and bound record methods.
type Invoker interface {
	Call(args ...any) ([]any, error)
}

// IsCallable reports whether value can be invoked: a non-nil func value or a
// non-nil Invoker. Arity and signature are not inspected.
func IsCallable(value any) bool {
	if value == nil {
		return false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Func:
		return !rv.IsNil()
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan:
		if rv.IsNil() {
			return false
		}
	}
	_, ok := value.(Invoker)
	return ok
}

// Callable returns the requirement registered under CallableName.
func Callable() *Requirement {
	return &Requirement{
		name:    CallableName,
		kind:    KindCallable,
		accepts: "funcs and Invoker implementations",
		match:   IsCallable,
	}
}
