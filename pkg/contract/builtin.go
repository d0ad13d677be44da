package contract

import (
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/DT021/invis/pkg/validator"
)

var (
	intKinds   = []reflect.Kind{reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64}
	uintKinds  = []reflect.Kind{reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr}
	floatKinds = []reflect.Kind{reflect.Float32, reflect.Float64}

	errorType = reflect.TypeFor[error]()
)

func isSet(t reflect.Type) bool {
	return t.Kind() == reflect.Map && t.Elem().Kind() == reflect.Struct && t.Elem().NumField() == 0
}

func isBytes(t reflect.Type) bool {
	return t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8
}

// Builtins returns the requirements every registry starts with, except
// when built WithoutBuiltins. The callable requirement is always present.
func Builtins() []*Requirement {
	intReq := Kinds("int", intKinds...)
	stringReq := Kinds("string", reflect.String)
	number := Kinds("number", append(append(append([]reflect.Kind{}, intKinds...), uintKinds...), floatKinds...)...)

	return []*Requirement{
		intReq,
		Kinds("uint", uintKinds...),
		Kinds("float", floatKinds...),
		Kinds("complex", reflect.Complex64, reflect.Complex128),
		number,
		stringReq,
		Kinds("bool", reflect.Bool),
		Predicate("bytes", "[]byte", func(v any) bool {
			return isBytes(reflect.TypeOf(v))
		}),
		Predicate("list", "slices", func(v any) bool {
			t := reflect.TypeOf(v)
			return t.Kind() == reflect.Slice && !isBytes(t)
		}),
		Kinds("array", reflect.Array),
		Predicate("map", "maps", func(v any) bool {
			t := reflect.TypeOf(v)
			return t.Kind() == reflect.Map && !isSet(t)
		}),
		Predicate("set", "map[K]struct{}", func(v any) bool {
			return isSet(reflect.TypeOf(v))
		}),
		Kinds("struct", reflect.Struct),
		Predicate("pointer", "non-nil pointers", func(v any) bool {
			rv := reflect.ValueOf(v)
			return rv.Kind() == reflect.Pointer && !rv.IsNil()
		}),
		ForType("error", errorType),
		ForType("time", reflect.TypeFor[time.Time]()),
		ForType("duration", reflect.TypeFor[time.Duration]()),
		ForType("uuid", reflect.TypeFor[uuid.UUID]()),
		Predicate("any", "any non-nil value", func(any) bool { return true }),

		number.Extend("positive", validator.Positive()),
		intReq.Extend("natural", validator.Positive()),
		stringReq.Extend("uuid_string", validator.UUID()),
	}
}
