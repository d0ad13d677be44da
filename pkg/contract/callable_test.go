package contract_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DT021/invis/pkg/contract"
)

type counter struct{ n int }

func (c *counter) Inc(by int) int {
	c.n += by
	return c.n
}

type invoker struct{}

func (invoker) Call(args ...any) ([]any, error) { return args, nil }

func funk(a, b int) int { return a + b }

func TestIsCallable(t *testing.T) {
	t.Parallel()
	c := &counter{}
	var nilFunc func()
	var nilInvoker *counterInvoker

	accepted := map[string]any{
		"free function":     funk,
		"stdlib function":   strings.ToUpper,
		"closure":           func() {},
		"method value":      c.Inc,
		"method expression": (*counter).Inc,
		"invoker value":     invoker{},
	}
	for name, v := range accepted {
		t.Run("accepts "+name, func(t *testing.T) {
			assert.True(t, contract.IsCallable(v))
		})
	}

	rejected := map[string]any{
		"int":          1,
		"zero":         0,
		"string":       "hello",
		"empty slice":  []int{},
		"map":          map[string]int{},
		"struct":       counter{},
		"pointer":      c,
		"nil":          nil,
		"nil func":     nilFunc,
		"nil invoker":  nilInvoker,
		"empty struct": struct{}{},
	}
	for name, v := range rejected {
		t.Run("rejects "+name, func(t *testing.T) {
			assert.False(t, contract.IsCallable(v))
		})
	}
}

type counterInvoker struct{}

func (*counterInvoker) Call(args ...any) ([]any, error) { return nil, nil }

func TestCallable(t *testing.T) {
	req := contract.Callable()

	assert.Equal(t, contract.CallableName, req.Name())
	assert.Equal(t, contract.KindCallable, req.Kind())
	assert.NoError(t, req.Check("fn", funk))

	err := req.Check("fn", 42)
	tm, ok := contract.AsTypeMismatch(err)
	assert.True(t, ok)
	assert.Equal(t, "callable", tm.Expected)
	assert.Equal(t, "int", tm.Actual)
}
