package record

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/DT021/invis/pkg/contract"
	"github.com/DT021/invis/pkg/guard"
	"github.com/DT021/invis/pkg/logger"
)

var objectType = reflect.TypeFor[*Object]()

// Field is one entry of a class field table.
type Field struct {
	name       string
	req        *contract.Requirement
	def        any
	defFunc    func() any
	hasDefault bool
	owner      string
}

func (f *Field) Name() string { return f.name }

// Requirement returns the requirement values of the field must satisfy.
func (f *Field) Requirement() *contract.Requirement { return f.req }

// Owner returns the name of the class that declared the field.
func (f *Field) Owner() string { return f.owner }

func (f *Field) HasDefault() bool { return f.hasDefault }

// DefaultValue returns the default, calling the default func if one was given.
func (f *Field) DefaultValue() any {
	if f.defFunc != nil {
		return f.defFunc()
	}
	return f.def
}

// FieldOption configures a field declaration.
type FieldOption func(*Field)

// Default sets the value used when the field is not passed to the constructor.
// The default is shared by every object; use DefaultFunc for slices and maps.
func Default(value any) FieldOption {
	return func(f *Field) {
		f.def = value
		f.defFunc = nil
		f.hasDefault = true
	}
}

// DefaultFunc sets a function producing a fresh default for every object.
func DefaultFunc(fn func() any) FieldOption {
	return func(f *Field) {
		f.def = nil
		f.defFunc = fn
		f.hasDefault = fn != nil
	}
}

type fieldDecl struct {
	field       Field
	requirement string
}

type methodDecl struct {
	name   string
	fn     any
	params []guard.Parameter
}

type constDecl struct {
	name  string
	value any
}

type definition struct {
	fields  []fieldDecl
	methods []methodDecl
	consts  []constDecl
	options *Options
}

// Option configures a class definition.
type Option func(*definition)

// WithField declares a field checked against the requirement registered as requirement.
func WithField(name, requirement string, opts ...FieldOption) Option {
	return func(d *definition) {
		decl := fieldDecl{field: Field{name: name}, requirement: requirement}
		for _, opt := range opts {
			opt(&decl.field)
		}
		d.fields = append(d.fields, decl)
	}
}

// WithFieldOf declares a field checked against req.
func WithFieldOf(name string, req *contract.Requirement, opts ...FieldOption) Option {
	return func(d *definition) {
		decl := fieldDecl{field: Field{name: name, req: req}}
		for _, opt := range opts {
			opt(&decl.field)
		}
		d.fields = append(d.fields, decl)
	}
}

// WithMethod declares a method. fn must be a func whose first parameter is
// *Object; params annotate the remaining parameters as in guard.Wrap.
func WithMethod(name string, fn any, params ...guard.Parameter) Option {
	return func(d *definition) {
		d.methods = append(d.methods, methodDecl{name: name, fn: fn, params: params})
	}
}

// WithConst declares a class-level constant.
func WithConst(name string, value any) Option {
	return func(d *definition) {
		d.consts = append(d.consts, constDecl{name: name, value: value})
	}
}

// WithOptions replaces the default options of the class.
func WithOptions(o Options) Option {
	return func(d *definition) {
		d.options = &o
	}
}

// Class is a validated class: a field table merged down the ancestor chain,
// methods, constants and options. Classes are immutable once defined.
type Class struct {
	name        string
	parent      *Class
	reg         *contract.Registry
	own         []*Field
	fields      []*Field
	index       map[string]int
	methods     map[string]*guard.Func
	consts      map[string]any
	options     Options
	requirement *contract.Requirement
}

// Define declares a root class. Field requirements are resolved in reg.
func Define(reg *contract.Registry, name string, opts ...Option) (*Class, error) {
	if reg == nil {
		return nil, fmt.Errorf("%w: %q: nil registry", ErrInvalidClass, name)
	}
	return define(reg, nil, name, opts)
}

// MustDefine is like Define but panics on error.
func MustDefine(reg *contract.Registry, name string, opts ...Option) *Class {
	c, err := Define(reg, name, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Extend declares a subclass of c. The subclass inherits fields, methods and
// constants; re-declared fields override the inherited ones.
func (c *Class) Extend(name string, opts ...Option) (*Class, error) {
	return define(c.reg, c, name, opts)
}

// MustExtend is like Extend but panics on error.
func (c *Class) MustExtend(name string, opts ...Option) *Class {
	sub, err := c.Extend(name, opts...)
	if err != nil {
		panic(err)
	}
	return sub
}

func define(reg *contract.Registry, parent *Class, name string, opts []Option) (*Class, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty class name", ErrInvalidClass)
	}

	var d definition
	for _, opt := range opts {
		opt(&d)
	}

	c := &Class{
		name:    name,
		parent:  parent,
		reg:     reg,
		methods: make(map[string]*guard.Func, len(d.methods)),
		consts:  make(map[string]any, len(d.consts)),
		options: DefaultOptions(),
	}
	if d.options != nil {
		c.options = *d.options
	}
	if err := c.options.validate(); err != nil {
		return nil, fmt.Errorf("%w: %q", err, name)
	}
	if parent != nil && parent.options.Frozen != c.options.Frozen {
		return nil, fmt.Errorf("%w: %q: frozen and non-frozen classes cannot inherit from each other", ErrInvalidClass, name)
	}
	c.requirement = contract.Predicate(name, "instances of "+name, func(value any) bool {
		obj, ok := value.(*Object)
		return ok && obj != nil && obj.IsA(c)
	})

	if err := c.buildFields(d.fields); err != nil {
		return nil, err
	}
	if err := c.buildMethods(d.methods); err != nil {
		return nil, err
	}
	for _, k := range d.consts {
		if _, dup := c.consts[k.name]; dup || k.name == "" {
			return nil, fmt.Errorf("%w: %q: invalid or duplicate constant %q", ErrInvalidClass, name, k.name)
		}
		c.consts[k.name] = k.value
	}

	reg.Logger().Debug("Defining class.",
		logger.Class(name),
		"parent", c.parentName(),
		"fields", len(c.fields),
		"own_fields", len(c.own),
		"methods", len(c.methods),
	)
	return c, nil
}

func (c *Class) buildFields(decls []fieldDecl) error {
	seen := make(map[string]struct{}, len(decls))
	defaults := false
	for _, decl := range decls {
		f := decl.field
		f.owner = c.name

		if f.name == "" {
			return fmt.Errorf("%w: %q: field without name", ErrInvalidClass, c.name)
		}
		if _, dup := seen[f.name]; dup {
			return fmt.Errorf("%w: %q: duplicate field %q", ErrInvalidClass, c.name, f.name)
		}
		seen[f.name] = struct{}{}

		if f.req == nil {
			if decl.requirement == "" {
				return fmt.Errorf("%w: %q: field %q has no requirement", ErrInvalidClass, c.name, f.name)
			}
			req, err := c.reg.Resolve(decl.requirement)
			if err != nil {
				return fmt.Errorf("%w: %q: field %q: %w", ErrInvalidClass, c.name, f.name, err)
			}
			f.req = req
		}

		switch {
		case f.hasDefault:
			defaults = true
			if err := f.req.Check(f.name, f.DefaultValue()); err != nil {
				return fmt.Errorf("%w: %q: default of %q: %w", ErrInvalidClass, c.name, f.name, err)
			}
		case defaults:
			return fmt.Errorf("%w: %q: field %q without default follows a field with default", ErrInvalidClass, c.name, f.name)
		}

		c.own = append(c.own, &f)
	}

	if c.parent != nil {
		c.fields = append(c.fields, c.parent.fields...)
	}
	c.index = make(map[string]int, len(c.fields)+len(c.own))
	for i, f := range c.fields {
		c.index[f.name] = i
	}
	for _, f := range c.own {
		if i, ok := c.index[f.name]; ok {
			c.fields[i] = f
			continue
		}
		c.index[f.name] = len(c.fields)
		c.fields = append(c.fields, f)
	}
	return nil
}

func (c *Class) buildMethods(decls []methodDecl) error {
	for _, m := range decls {
		if m.name == "" {
			return fmt.Errorf("%w: %q: method without name", ErrInvalidClass, c.name)
		}
		if _, dup := c.methods[m.name]; dup {
			return fmt.Errorf("%w: %q: duplicate method %q", ErrInvalidClass, c.name, m.name)
		}
		t := reflect.TypeOf(m.fn)
		if t == nil || t.Kind() != reflect.Func || t.NumIn() == 0 || t.In(0) != objectType {
			return fmt.Errorf("%w: %q: method %q must be a func taking *record.Object first", ErrInvalidClass, c.name, m.name)
		}
		params := append([]guard.Parameter{guard.ParamOf("self", c.requirement)}, m.params...)
		fn, err := guard.Wrap(c.reg, m.fn, params...)
		if err != nil {
			return fmt.Errorf("%w: %q: method %q: %w", ErrInvalidClass, c.name, m.name, err)
		}
		c.methods[m.name] = fn
	}
	return nil
}

func (c *Class) parentName() string {
	if c.parent == nil {
		return ""
	}
	return c.parent.name
}

func (c *Class) Name() string { return c.name }

// Parent returns the class c extends, or nil for a root class.
func (c *Class) Parent() *Class { return c.parent }

func (c *Class) Options() Options { return c.options }

// Fields returns the merged field table: inherited fields first, in declaration order.
func (c *Class) Fields() []*Field {
	return append([]*Field(nil), c.fields...)
}

// OwnFields returns the fields declared by c itself. They are the constructor parameters.
func (c *Class) OwnFields() []*Field {
	return append([]*Field(nil), c.own...)
}

// Field looks up a field in the merged table.
func (c *Class) Field(name string) (*Field, bool) {
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return c.fields[i], true
}

// Method resolves name through the ancestor chain.
func (c *Class) Method(name string) (*guard.Func, bool) {
	for cur := c; cur != nil; cur = cur.parent {
		if fn, ok := cur.methods[name]; ok {
			return fn, true
		}
	}
	return nil, false
}

// Const resolves a class constant through the ancestor chain.
func (c *Class) Const(name string) (any, error) {
	for cur := c; cur != nil; cur = cur.parent {
		if v, ok := cur.consts[name]; ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: %s.%s", ErrUnknownConst, c.name, name)
}

// IsSubclassOf reports whether c is other or descends from it.
func (c *Class) IsSubclassOf(other *Class) bool {
	for cur := c; cur != nil; cur = cur.parent {
		if cur == other {
			return true
		}
	}
	return false
}

// Requirement returns a requirement accepting objects of c and its subclasses.
// It can annotate fields and guarded parameters, or be registered by name.
func (c *Class) Requirement() *contract.Requirement { return c.requirement }

// Chain returns the class names from the root class down to c.
func (c *Class) Chain() string {
	var names []string
	for cur := c; cur != nil; cur = cur.parent {
		names = append([]string{cur.name}, names...)
	}
	return strings.Join(names, " > ")
}

func (c *Class) String() string { return c.name }
