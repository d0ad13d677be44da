package contract

import (
	"fmt"
	"reflect"

	"github.com/DT021/invis/pkg/validator"
)

// Kind classifies how a requirement matches values.
type Kind int

const (
	// KindType requirements accept values by Go type or kind.
	KindType Kind = iota
	// KindCallable requirements accept invocable values.
	KindCallable
	// KindComposite requirements add rules on top of a base requirement.
	KindComposite
)

func (k Kind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindCallable:
		return "callable"
	case KindComposite:
		return "composite"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ownedRule remembers the chain depth of the requirement that added the rule.
type ownedRule struct {
	depth int
	rule  validator.Rule
}

// Requirement is a named semantic type requirement: a type predicate followed
// by an ordered list of rules that must all hold. Requirements are immutable.
type Requirement struct {
	name     string
	kind     Kind
	accepts  string
	match    func(value any) bool
	base     *Requirement
	depth    int
	rules    []ownedRule
	original reflect.Type
}

// Predicate builds a type requirement from an arbitrary predicate.
// accepts describes the accepted values for listings.
func Predicate(name, accepts string, match func(value any) bool) *Requirement {
	return &Requirement{
		name:    name,
		kind:    KindType,
		accepts: accepts,
		match: func(value any) bool {
			return value != nil && match(value)
		},
	}
}

// Kinds builds a requirement accepting values whose reflect.Kind is one of kinds.
// Named types count: a `type Celsius float64` satisfies Kinds(.., reflect.Float64).
func Kinds(name string, kinds ...reflect.Kind) *Requirement {
	set := make(map[reflect.Kind]struct{}, len(kinds))
	for _, k := range kinds {
		set[k] = struct{}{}
	}
	return Predicate(name, fmt.Sprintf("kinds %v", kinds), func(value any) bool {
		_, ok := set[reflect.TypeOf(value).Kind()]
		return ok
	})
}

// ForType builds a requirement for a Go type. Concrete types must match
// exactly; for interface types any implementation is accepted.
func ForType(name string, t reflect.Type) *Requirement {
	if t == nil {
		panic("contract: ForType called with nil type")
	}
	var req *Requirement
	if t.Kind() == reflect.Interface {
		req = Predicate(name, "implementations of "+t.String(), func(value any) bool {
			return reflect.TypeOf(value).Implements(t)
		})
	} else {
		req = Predicate(name, t.String(), func(value any) bool {
			return reflect.TypeOf(value) == t
		})
	}
	req.original = t
	return req
}

// TypeOf builds a requirement for T named after T.
func TypeOf[T any]() *Requirement {
	t := reflect.TypeFor[T]()
	return ForType(t.String(), t)
}

// Implements builds a requirement accepting every implementation of the interface I.
// It panics when I is not an interface type.
func Implements[I any]() *Requirement {
	t := reflect.TypeFor[I]()
	if t.Kind() != reflect.Interface {
		panic(fmt.Sprintf("contract: Implements needs an interface type, got %s", t))
	}
	return ForType(t.String(), t)
}

func (q *Requirement) Name() string { return q.name }

func (q *Requirement) Kind() Kind { return q.kind }

// Accepts describes the values passing the type predicate.
func (q *Requirement) Accepts() string { return q.accepts }

// Base returns the requirement q was extended from, or nil.
func (q *Requirement) Base() *Requirement { return q.base }

// GoType returns the Go type a ForType requirement was built from, or nil.
func (q *Requirement) GoType() reflect.Type { return q.original }

// Rules returns the flattened rule list, base rules first.
func (q *Requirement) Rules() []validator.Rule {
	rules := make([]validator.Rule, len(q.rules))
	for i, r := range q.rules {
		rules[i] = r.rule
	}
	return rules
}

// Chain returns the requirement names from the root base down to q.
func (q *Requirement) Chain() []string {
	var chain []string
	for cur := q; cur != nil; cur = cur.base {
		chain = append([]string{cur.name}, chain...)
	}
	return chain
}

// Layer groups the rules added by one requirement of a chain.
type Layer struct {
	Requirement string
	Rules       []validator.Rule
}

// Layers returns the chain of q with the rules each level contributed.
func (q *Requirement) Layers() []Layer {
	chain := q.Chain()
	layers := make([]Layer, len(chain))
	for i, name := range chain {
		layers[i].Requirement = name
	}
	for _, r := range q.rules {
		layers[r.depth].Rules = append(layers[r.depth].Rules, r.rule)
	}
	return layers
}

// Extend composes a new requirement named name that accepts what q accepts
// and additionally satisfies every rule, evaluated after q's own rules.
func (q *Requirement) Extend(name string, rules ...validator.Rule) *Requirement {
	flat := make([]ownedRule, 0, len(q.rules)+len(rules))
	flat = append(flat, q.rules...)
	for _, r := range rules {
		flat = append(flat, ownedRule{depth: q.depth + 1, rule: r})
	}
	return &Requirement{
		name:     name,
		kind:     KindComposite,
		accepts:  q.accepts,
		match:    q.match,
		base:     q,
		depth:    q.depth + 1,
		rules:    flat,
		original: q.original,
	}
}

// Matches reports whether value satisfies q.
func (q *Requirement) Matches(value any) bool {
	return q.Check("", value) == nil
}

// Check validates value destined for field. It returns nil or a *TypeMismatch.
// Rules are evaluated in order and evaluation stops at the first failure.
func (q *Requirement) Check(field string, value any) error {
	if !q.match(value) {
		return q.mismatch(field, value)
	}
	for _, r := range q.rules {
		if !r.rule.Check(value) {
			tm := q.mismatch(field, value)
			tm.Rule = r.rule.Name
			tm.Reason = r.rule.Message
			return tm
		}
	}
	return nil
}

// Explain validates value like Check but reports every failed rule.
// A type predicate failure is returned as a *TypeMismatch on its own.
func (q *Requirement) Explain(value any) error {
	if !q.match(value) {
		return q.mismatch("", value)
	}
	return validator.Apply(value, q.Rules()...)
}

func (q *Requirement) mismatch(field string, value any) *TypeMismatch {
	return &TypeMismatch{
		Field:    field,
		Expected: q.name,
		Actual:   TypeName(value),
		Value:    value,
	}
}

func (q *Requirement) String() string { return q.name }
