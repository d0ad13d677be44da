package contract_test

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DT021/invis/pkg/contract"
	"github.com/DT021/invis/pkg/validator"
)

type celsius float64

type shape interface{ Area() float64 }

type square struct{ side float64 }

func (s square) Area() float64 { return s.side * s.side }

func TestKinds(t *testing.T) {
	t.Parallel()
	req := contract.Kinds("float", reflect.Float32, reflect.Float64)

	assert.NoError(t, req.Check("x", 1.5))
	assert.NoError(t, req.Check("x", float32(1)))
	assert.NoError(t, req.Check("x", celsius(21.5)), "named types keep their kind")
	assert.Error(t, req.Check("x", 1))
	assert.Error(t, req.Check("x", nil))
}

func TestForType(t *testing.T) {
	t.Parallel()

	t.Run("concrete types match exactly", func(t *testing.T) {
		req := contract.TypeOf[square]()
		assert.Equal(t, "contract_test.square", req.Name())
		assert.NoError(t, req.Check("s", square{side: 2}))
		assert.Error(t, req.Check("s", &square{side: 2}))
	})

	t.Run("interfaces accept implementations", func(t *testing.T) {
		req := contract.Implements[shape]()
		assert.NoError(t, req.Check("s", square{side: 1}))
		assert.NoError(t, req.Check("s", &square{side: 1}))
		assert.Error(t, req.Check("s", 3))
		assert.Equal(t, reflect.TypeFor[shape](), req.GoType())
	})

	t.Run("implements panics for concrete types", func(t *testing.T) {
		assert.Panics(t, func() { contract.Implements[square]() })
	})

	t.Run("for type panics on nil type", func(t *testing.T) {
		assert.Panics(t, func() { contract.ForType("x", nil) })
	})
}

func TestRequirement_Extend(t *testing.T) {
	t.Parallel()
	number := contract.Kinds("int", reflect.Int)
	positive := number.Extend("positive_int", validator.Positive())
	small := positive.Extend("small_positive_int", validator.Lt(10))

	t.Run("all rules in the chain must pass", func(t *testing.T) {
		assert.NoError(t, small.Check("n", 5))

		err := small.Check("n", 0)
		tm, ok := contract.AsTypeMismatch(err)
		require.True(t, ok)
		assert.Equal(t, "positive", tm.Rule)

		tm, ok = contract.AsTypeMismatch(small.Check("n", 12))
		require.True(t, ok)
		assert.Equal(t, "lt", tm.Rule)
		assert.Equal(t, "small_positive_int", tm.Expected)
	})

	t.Run("type predicate is inherited", func(t *testing.T) {
		tm, ok := contract.AsTypeMismatch(small.Check("n", 5.0))
		require.True(t, ok)
		assert.Empty(t, tm.Rule)
		assert.Equal(t, "float64", tm.Actual)
	})

	t.Run("base is untouched", func(t *testing.T) {
		assert.NoError(t, number.Check("n", -1))
		assert.Empty(t, number.Rules())
		assert.Len(t, positive.Rules(), 1)
	})

	t.Run("chain and layers", func(t *testing.T) {
		assert.Equal(t, []string{"int", "positive_int", "small_positive_int"}, small.Chain())
		assert.Equal(t, contract.KindComposite, small.Kind())
		assert.Same(t, positive, small.Base())

		layers := small.Layers()
		require.Len(t, layers, 3)
		assert.Empty(t, layers[0].Rules)
		assert.Equal(t, "positive", layers[1].Rules[0].Name)
		assert.Equal(t, "lt", layers[2].Rules[0].Name)
	})

	t.Run("layers keep their position when a name repeats", func(t *testing.T) {
		bounded := positive.Extend("positive_int", validator.Lt(100))
		layers := bounded.Layers()
		require.Len(t, layers, 3)
		assert.Equal(t, "positive_int", layers[1].Requirement)
		require.Len(t, layers[1].Rules, 1)
		assert.Equal(t, "positive", layers[1].Rules[0].Name)
		assert.Equal(t, "positive_int", layers[2].Requirement)
		require.Len(t, layers[2].Rules, 1)
		assert.Equal(t, "lt", layers[2].Rules[0].Name)
	})
}

func TestRequirement_Explain(t *testing.T) {
	t.Parallel()
	req := contract.Kinds("string", reflect.String).Extend("handle", validator.MinLen(3), validator.NoWhitespace())

	verrs := validator.ExtractValidationErrors(req.Explain("a b"))
	assert.Equal(t, []string{"no_whitespace"}, verrs.Rules())

	verrs = validator.ExtractValidationErrors(req.Explain(" "))
	assert.Equal(t, []string{"min_len", "no_whitespace"}, verrs.Rules())

	assert.True(t, contract.IsTypeMismatch(req.Explain(5)))
	assert.NoError(t, req.Explain("alice"))
}

func TestTypeMismatch(t *testing.T) {
	t.Parallel()

	t.Run("type failure message", func(t *testing.T) {
		err := contract.Kinds("int", reflect.Int).Check("age", "ten")
		assert.EqualError(t, err, `type mismatch for "age": expected int, got string`)
		assert.ErrorIs(t, err, contract.ErrTypeMismatch)
	})

	t.Run("rule failure message", func(t *testing.T) {
		req := contract.Kinds("int", reflect.Int).Extend("natural", validator.Positive())
		err := req.Check("age", 0)
		assert.EqualError(t, err, `type mismatch for "age": expected natural, got int (positive: must be > 0)`)
	})

	t.Run("survives wrapping", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", contract.Kinds("int", reflect.Int).Check("x", nil))
		tm, ok := contract.AsTypeMismatch(err)
		require.True(t, ok)
		assert.Equal(t, "nil", tm.Actual)
		assert.True(t, contract.IsTypeMismatch(err))
	})

	t.Run("unrelated errors", func(t *testing.T) {
		_, ok := contract.AsTypeMismatch(errors.New("boom"))
		assert.False(t, ok)
		assert.False(t, contract.IsTypeMismatch(io.EOF))
	})
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "type", contract.KindType.String())
	assert.Equal(t, "callable", contract.KindCallable.String())
	assert.Equal(t, "composite", contract.KindComposite.String())
	assert.True(t, strings.HasPrefix(contract.Kind(9).String(), "kind("))
}
