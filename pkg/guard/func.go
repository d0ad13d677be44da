package guard

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"sort"
	"strings"

	"github.com/DT021/invis/pkg/contract"
)

var errorType = reflect.TypeFor[error]()

// Func is a Go function whose arguments are checked against their
// annotations before every call. It satisfies contract.Invoker.
type Func struct {
	name      string
	fn        reflect.Value
	typ       reflect.Type
	params    []Parameter
	reg       *contract.Registry
	returnErr bool
}

// Wrap guards fn. params must annotate every Go parameter of fn, in order.
// Requirement names are resolved in reg immediately.
func Wrap(reg *contract.Registry, fn any, params ...Parameter) (*Func, error) {
	if reg == nil {
		return nil, fmt.Errorf("%w: nil registry", ErrInvalidSignature)
	}
	rv := reflect.ValueOf(fn)
	if fn == nil || rv.Kind() != reflect.Func || rv.IsNil() {
		return nil, fmt.Errorf("%w: expected a non-nil func, got %s", ErrInvalidSignature, contract.TypeName(fn))
	}

	typ := rv.Type()
	if typ.NumIn() != len(params) {
		return nil, fmt.Errorf("%w: %s has %d parameters, %d annotated", ErrInvalidSignature, typ, typ.NumIn(), len(params))
	}

	resolved := make([]Parameter, len(params))
	seen := make(map[string]struct{}, len(params))
	defaults := false
	for i, p := range params {
		if p.name == "" {
			return nil, fmt.Errorf("%w: parameter %d has no name", ErrInvalidSignature, i)
		}
		if _, dup := seen[p.name]; dup {
			return nil, fmt.Errorf("%w: duplicate parameter %q", ErrInvalidSignature, p.name)
		}
		seen[p.name] = struct{}{}

		variadic := typ.IsVariadic() && i == len(params)-1
		switch {
		case p.hasDefault && variadic:
			return nil, fmt.Errorf("%w: variadic parameter %q cannot have a default", ErrInvalidSignature, p.name)
		case p.hasDefault:
			defaults = true
		case defaults && !variadic:
			return nil, fmt.Errorf("%w: parameter %q without default follows a parameter with default", ErrInvalidSignature, p.name)
		}

		if p.req == nil && p.requirement != "" {
			req, err := reg.Resolve(p.requirement)
			if err != nil {
				return nil, fmt.Errorf("%w: parameter %q: %w", ErrInvalidSignature, p.name, err)
			}
			p.req = req
		}
		resolved[i] = p
	}

	f := &Func{
		name:   funcName(rv),
		fn:     rv,
		typ:    typ,
		params: resolved,
		reg:    reg,
	}
	if n := typ.NumOut(); n > 0 && typ.Out(n-1) == errorType {
		f.returnErr = true
	}

	reg.Logger().Debug("Guarding function.", "name", f.name, "signature", f.Signature())
	return f, nil
}

// MustWrap is like Wrap but panics on error.
func MustWrap(reg *contract.Registry, fn any, params ...Parameter) *Func {
	f, err := Wrap(reg, fn, params...)
	if err != nil {
		panic(err)
	}
	return f
}

func funcName(rv reflect.Value) string {
	if rf := runtime.FuncForPC(rv.Pointer()); rf != nil {
		name := rf.Name()
		if i := strings.LastIndex(name, "/"); i >= 0 {
			name = name[i+1:]
		}
		return name
	}
	return rv.Type().String()
}

func (f *Func) Name() string { return f.name }

// Params returns the resolved parameter annotations.
func (f *Func) Params() []Parameter {
	return append([]Parameter(nil), f.params...)
}

// Signature renders the annotated parameter list, e.g. "(a int, b float = 1)".
func (f *Func) Signature() string {
	parts := make([]string, len(f.params))
	for i, p := range f.params {
		s := p.name
		if p.requirement != "" {
			s += " " + p.requirement
		}
		if f.typ.IsVariadic() && i == len(f.params)-1 {
			s = "..." + s
		}
		if p.hasDefault {
			s += fmt.Sprintf(" = %v", p.def)
		}
		parts[i] = s
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Call invokes the function with positional arguments.
func (f *Func) Call(args ...any) ([]any, error) {
	return f.CallKw(args, nil)
}

// CallKw binds positional args and then keyword arguments to parameters,
// fills omitted parameters from their defaults, checks every argument and
// finally invokes the function. Nothing is invoked when any check fails.
//
// The function's results are returned in order. When the last result is an
// error it is removed from the slice and returned as the call's error.
func (f *Func) CallKw(args []any, kwargs map[string]any) ([]any, error) {
	values, extra, err := f.bind(args, kwargs)
	if err != nil {
		return nil, err
	}

	in := make([]reflect.Value, 0, len(values)+len(extra))
	for i, v := range values {
		rv, err := f.prepare(f.params[i], f.params[i].name, v, f.typ.In(i))
		if err != nil {
			return nil, err
		}
		in = append(in, rv)
	}
	if len(extra) > 0 {
		last := f.params[len(f.params)-1]
		elem := f.typ.In(len(f.params) - 1).Elem()
		for j, v := range extra {
			rv, err := f.prepare(last, fmt.Sprintf("%s[%d]", last.name, j), v, elem)
			if err != nil {
				return nil, err
			}
			in = append(in, rv)
		}
	}

	out := f.fn.Call(in)
	return f.results(out)
}

func (f *Func) bind(args []any, kwargs map[string]any) ([]any, []any, error) {
	fixed := len(f.params)
	if f.typ.IsVariadic() {
		fixed--
	}

	values := make([]any, fixed)
	set := make([]bool, fixed)
	var extra []any

	for i, a := range args {
		switch {
		case i < fixed:
			values[i] = a
			set[i] = true
		case f.typ.IsVariadic():
			extra = append(extra, a)
		default:
			return nil, nil, fmt.Errorf("%w: %s takes %d arguments, %d given", ErrArgument, f.name, fixed, len(args))
		}
	}

	names := make([]string, 0, len(kwargs))
	for name := range kwargs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		idx := f.index(name)
		if idx < 0 || idx >= fixed {
			return nil, nil, fmt.Errorf("%w: %s got an unexpected keyword argument %q", ErrArgument, f.name, name)
		}
		if set[idx] {
			return nil, nil, fmt.Errorf("%w: %s got multiple values for argument %q", ErrArgument, f.name, name)
		}
		values[idx] = kwargs[name]
		set[idx] = true
	}

	var missing []string
	for i := range fixed {
		if set[i] {
			continue
		}
		if f.params[i].hasDefault {
			values[i] = f.params[i].def
			continue
		}
		missing = append(missing, f.params[i].name)
	}
	if len(missing) > 0 {
		return nil, nil, fmt.Errorf("%w: %s missing required arguments: %s", ErrArgument, f.name, strings.Join(missing, ", "))
	}

	return values, extra, nil
}

func (f *Func) index(name string) int {
	for i, p := range f.params {
		if p.name == name {
			return i
		}
	}
	return -1
}

// prepare checks value against the parameter annotation and converts it to
// a reflect.Value assignable to t.
func (f *Func) prepare(p Parameter, field string, value any, t reflect.Type) (reflect.Value, error) {
	if p.annotated() {
		if err := f.reg.Enforce(field, p.req, value); err != nil {
			return reflect.Value{}, err
		}
	}
	return assignable(field, value, t)
}

func assignable(field string, value any, t reflect.Type) (reflect.Value, error) {
	if value == nil {
		switch t.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, &contract.TypeMismatch{Field: field, Expected: t.String(), Actual: "nil"}
	}
	rv := reflect.ValueOf(value)
	if !rv.Type().AssignableTo(t) {
		return reflect.Value{}, &contract.TypeMismatch{
			Field:    field,
			Expected: t.String(),
			Actual:   rv.Type().String(),
			Value:    value,
		}
	}
	return rv, nil
}

func (f *Func) results(out []reflect.Value) ([]any, error) {
	var err error
	if f.returnErr {
		last := out[len(out)-1]
		out = out[:len(out)-1]
		if !last.IsNil() {
			err = last.Interface().(error)
		}
	}
	results := make([]any, len(out))
	for i, v := range out {
		results[i] = v.Interface()
	}
	return results, err
}

// Result extracts the first result of a guarded call as T.
//
//	sum, err := guard.Result[float64](add.Call(2, 3.0))
func Result[T any](results []any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if len(results) == 0 {
		return zero, errors.New("guard: call returned no results")
	}
	v, ok := results[0].(T)
	if !ok {
		return zero, fmt.Errorf("guard: result is %s, not %s", contract.TypeName(results[0]), reflect.TypeFor[T]())
	}
	return v, nil
}
