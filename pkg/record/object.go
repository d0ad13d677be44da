package record

import (
	"cmp"
	"fmt"
	"hash/fnv"
	"maps"
	"reflect"
	"strconv"
	"strings"
)

// Object is an instance of a Class. Every assigned field value satisfies its
// field requirement; unassigned fields are reported by Has and Get.
//
// Objects are not safe for concurrent mutation.
type Object struct {
	class  *Class
	values map[string]any
	frozen bool
}

// New constructs an object. args bind, in order, to the fields declared by c
// itself; inherited fields take their defaults or stay unset. Omitted own
// fields take their defaults.
func (c *Class) New(args ...any) (*Object, error) {
	if !c.options.Init && len(args) > 0 {
		return nil, fmt.Errorf("%w: %s takes no arguments", ErrTooManyArguments, c.name)
	}
	if len(args) > len(c.own) {
		return nil, fmt.Errorf("%w: %s takes %d arguments, %d given", ErrTooManyArguments, c.name, len(c.own), len(args))
	}

	given := make(map[string]any, len(args))
	for i, a := range args {
		given[c.own[i].name] = a
	}
	return c.construct(given)
}

// NewNamed constructs an object from field names. Keys must name fields
// declared by c itself.
func (c *Class) NewNamed(values map[string]any) (*Object, error) {
	if !c.options.Init && len(values) > 0 {
		return nil, fmt.Errorf("%w: %s takes no arguments", ErrTooManyArguments, c.name)
	}
	for name := range values {
		if !c.ownsField(name) {
			return nil, fmt.Errorf("%w: %s has no constructor argument %q", ErrUnknownField, c.name, name)
		}
	}
	return c.construct(values)
}

// MustNew is like New but panics on error.
func (c *Class) MustNew(args ...any) *Object {
	obj, err := c.New(args...)
	if err != nil {
		panic(err)
	}
	return obj
}

func (c *Class) ownsField(name string) bool {
	for _, f := range c.own {
		if f.name == name {
			return true
		}
	}
	return false
}

func (c *Class) construct(given map[string]any) (*Object, error) {
	if c.options.Init {
		var missing []string
		for _, f := range c.own {
			if _, ok := given[f.name]; !ok && !f.hasDefault {
				missing = append(missing, f.name)
			}
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("%w: %s requires %s", ErrMissingArgument, c.name, strings.Join(missing, ", "))
		}
	}

	obj := &Object{class: c, values: make(map[string]any, len(c.fields))}
	for _, f := range c.fields {
		v, ok := given[f.name]
		switch {
		case ok:
		case f.hasDefault:
			v = f.DefaultValue()
			if f.defFunc == nil {
				obj.values[f.name] = v
				continue
			}
		default:
			continue
		}
		if err := c.reg.Enforce(f.name, f.req, v); err != nil {
			return nil, err
		}
		obj.values[f.name] = v
	}
	obj.frozen = c.options.Frozen
	return obj, nil
}

func (o *Object) Class() *Class { return o.class }

// IsA reports whether o is an instance of c or of a subclass of c.
func (o *Object) IsA(c *Class) bool {
	return o.class.IsSubclassOf(c)
}

// Set checks value against the field requirement and stores it. On error the
// previous value is kept.
func (o *Object) Set(name string, value any) error {
	f, ok := o.class.Field(name)
	if !ok {
		return fmt.Errorf("%w: %s.%s", ErrUnknownField, o.class.name, name)
	}
	if o.frozen {
		return fmt.Errorf("%w: cannot assign %s.%s", ErrFrozen, o.class.name, name)
	}
	if err := o.class.reg.Enforce(name, f.req, value); err != nil {
		return err
	}
	o.values[name] = value
	return nil
}

func (o *Object) Get(name string) (any, error) {
	if _, ok := o.class.Field(name); !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownField, o.class.name, name)
	}
	v, ok := o.values[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnsetField, o.class.name, name)
	}
	return v, nil
}

// Has reports whether the field holds a value.
func (o *Object) Has(name string) bool {
	_, ok := o.values[name]
	return ok
}

// Values returns a copy of the assigned field values.
func (o *Object) Values() map[string]any {
	return maps.Clone(o.values)
}

// Const resolves a constant of the object's class.
func (o *Object) Const(name string) (any, error) {
	return o.class.Const(name)
}

// String renders Name(field=value, ...) when the class has Repr, unset fields
// omitted, and <Name object> otherwise.
func (o *Object) String() string {
	if !o.class.options.Repr {
		return "<" + o.class.name + " object>"
	}
	var b strings.Builder
	b.WriteString(o.class.name)
	b.WriteByte('(')
	first := true
	for _, f := range o.class.fields {
		v, ok := o.values[f.name]
		if !ok {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(f.name)
		b.WriteByte('=')
		b.WriteString(formatValue(v))
	}
	b.WriteByte(')')
	return b.String()
}

func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprint(v)
}

// Equal compares class and field values when the class has Eq, and identity otherwise.
// Func values are equal when they share type and code pointer, so closures
// built from the same literal compare equal whatever they capture.
func (o *Object) Equal(other *Object) bool {
	if o == other {
		return true
	}
	if other == nil || !o.class.options.Eq || o.class != other.class {
		return false
	}
	if len(o.values) != len(other.values) {
		return false
	}
	for name, a := range o.values {
		b, ok := other.values[name]
		if !ok || !valuesEqual(a, b) {
			return false
		}
	}
	return true
}

func valuesEqual(a, b any) bool {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Kind() == reflect.Func && bv.Kind() == reflect.Func {
		return av.Type() == bv.Type() && av.Pointer() == bv.Pointer()
	}
	return reflect.DeepEqual(a, b)
}

// Compare orders two objects of the same class field by field, in table
// order. It needs Order and values of ordered kinds.
func (o *Object) Compare(other *Object) (int, error) {
	if !o.class.options.Order {
		return 0, fmt.Errorf("%w: %s has no order", ErrNotOrderable, o.class.name)
	}
	if other == nil || o.class != other.class {
		return 0, fmt.Errorf("%w: cannot compare %s with %v", ErrNotOrderable, o.class.name, otherName(other))
	}
	for _, f := range o.class.fields {
		a, aok := o.values[f.name]
		b, bok := other.values[f.name]
		if !aok && !bok {
			continue
		}
		if !aok || !bok {
			return 0, fmt.Errorf("%w: field %q is unset", ErrNotOrderable, f.name)
		}
		c, ok := compareValues(a, b)
		if !ok {
			return 0, fmt.Errorf("%w: field %q holds %T and %T", ErrNotOrderable, f.name, a, b)
		}
		if c != 0 {
			return c, nil
		}
	}
	return 0, nil
}

func otherName(other *Object) string {
	if other == nil {
		return "nil"
	}
	return other.class.name
}

func compareValues(a, b any) (int, bool) {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	ak, bk := av.Kind(), bv.Kind()
	switch {
	case isInt(ak) && isInt(bk):
		return cmp.Compare(av.Int(), bv.Int()), true
	case isUint(ak) && isUint(bk):
		return cmp.Compare(av.Uint(), bv.Uint()), true
	case isNumber(ak) && isNumber(bk):
		return cmp.Compare(asFloat(av), asFloat(bv)), true
	case ak == reflect.String && bk == reflect.String:
		return cmp.Compare(av.String(), bv.String()), true
	case ak == reflect.Bool && bk == reflect.Bool:
		switch {
		case av.Bool() == bv.Bool():
			return 0, true
		case bv.Bool():
			return -1, true
		default:
			return 1, true
		}
	}
	return 0, false
}

func isInt(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUint(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func isNumber(k reflect.Kind) bool {
	return isInt(k) || isUint(k) || k == reflect.Float32 || k == reflect.Float64
}

func asFloat(v reflect.Value) float64 {
	switch {
	case isInt(v.Kind()):
		return float64(v.Int())
	case isUint(v.Kind()):
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

// Hash returns a hash of the class name and field values. It is available for
// classes with UnsafeHash, or with both Frozen and Eq.
func (o *Object) Hash() (uint64, error) {
	if !o.class.options.hashable() {
		return 0, fmt.Errorf("%w: %s", ErrNotHashable, o.class.name)
	}
	h := fnv.New64a()
	h.Write([]byte(o.class.name))
	for _, f := range o.class.fields {
		v, ok := o.values[f.name]
		if !ok {
			continue
		}
		fmt.Fprintf(h, "\x00%s=%#v", f.name, v)
	}
	return h.Sum64(), nil
}
