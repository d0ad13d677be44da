package guard

import "github.com/DT021/invis/pkg/contract"

// Parameter annotates one parameter of a guarded function.
type Parameter struct {
	name        string
	requirement string
	req         *contract.Requirement
	def         any
	hasDefault  bool
}

// Param annotates a parameter with a requirement looked up by name at Wrap time.
func Param(name, requirement string) Parameter {
	return Parameter{name: name, requirement: requirement}
}

// ParamOf annotates a parameter with an explicit requirement.
func ParamOf(name string, req *contract.Requirement) Parameter {
	p := Parameter{name: name, req: req}
	if req != nil {
		p.requirement = req.Name()
	}
	return p
}

// Unchecked declares a parameter without annotation. Its arguments are only
// required to be assignable to the Go parameter type.
func Unchecked(name string) Parameter {
	return Parameter{name: name}
}

// Default returns a copy of p used when the caller omits the argument.
// Defaults are validated like explicit arguments every time they are used.
func (p Parameter) Default(value any) Parameter {
	p.def = value
	p.hasDefault = true
	return p
}

func (p Parameter) Name() string { return p.name }

// Requirement returns the requirement name, or "" when unchecked.
func (p Parameter) Requirement() string { return p.requirement }

func (p Parameter) HasDefault() bool { return p.hasDefault }

func (p Parameter) DefaultValue() any { return p.def }

func (p Parameter) annotated() bool { return p.req != nil }
