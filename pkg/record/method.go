package record

import (
	"fmt"

	"github.com/DT021/invis/pkg/guard"
)

// BoundMethod is a method bound to an object. It satisfies contract.Invoker,
// so bound methods pass the callable requirement.
type BoundMethod struct {
	obj  *Object
	name string
	fn   *guard.Func
}

// Method binds the method called name, resolved through the ancestor chain.
func (o *Object) Method(name string) (*BoundMethod, error) {
	fn, ok := o.class.Method(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownMethod, o.class.name, name)
	}
	return &BoundMethod{obj: o, name: name, fn: fn}, nil
}

// Call invokes a method with positional arguments. Arguments are checked
// against the method parameters before the method runs.
func (o *Object) Call(name string, args ...any) ([]any, error) {
	m, err := o.Method(name)
	if err != nil {
		return nil, err
	}
	return m.Call(args...)
}

func (m *BoundMethod) Name() string { return m.name }

// Receiver returns the object the method is bound to.
func (m *BoundMethod) Receiver() *Object { return m.obj }

func (m *BoundMethod) Call(args ...any) ([]any, error) {
	return m.fn.Call(append([]any{m.obj}, args...)...)
}

// CallKw invokes the method with positional and keyword arguments.
func (m *BoundMethod) CallKw(args []any, kwargs map[string]any) ([]any, error) {
	return m.fn.CallKw(append([]any{m.obj}, args...), kwargs)
}
