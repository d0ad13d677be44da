package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DT021/invis/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Rule: "positive", Message: "must be > 0"})
		assert.Equal(t, "validation failed: positive: must be > 0", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Rule: "non_empty", Message: "must not be empty"})
		errs.Add(validator.ValidationError{Rule: "min_len", Message: "too short"})

		msg := errs.Error()
		assert.Contains(t, msg, "validation failed:")
		assert.Contains(t, msg, "non_empty: must not be empty")
		assert.Contains(t, msg, "min_len: too short")
	})
}

func TestValidationErrors_Has(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Rule: "positive"})

	assert.True(t, errs.Has("positive"))
	assert.False(t, errs.Has("gt"))
	assert.Equal(t, []string{"positive"}, errs.Rules())
	assert.False(t, errs.IsEmpty())
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(5, validator.Positive(), validator.Lte(10))
		assert.NoError(t, err)
	})

	t.Run("collects every failed rule", func(t *testing.T) {
		err := validator.Apply(-1, validator.Positive(), validator.NonNegative(), validator.Lte(10))
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, []string{"positive", "non_negative"}, verrs.Rules())
	})

	t.Run("returns nil with no rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply("anything"))
	})
}

func TestFirst(t *testing.T) {
	t.Run("stops at the first failure", func(t *testing.T) {
		calls := 0
		counting := validator.Rule{
			Name: "counting",
			Check: func(any) bool {
				calls++
				return true
			},
		}

		failed, ok := validator.First(0, validator.Positive(), counting)
		require.True(t, ok)
		assert.Equal(t, "positive", failed.Name)
		assert.Equal(t, 0, calls)
	})

	t.Run("reports no failure when every rule passes", func(t *testing.T) {
		_, ok := validator.First(3, validator.Positive(), validator.Gt(2))
		assert.False(t, ok)
	})
}

func TestRule_String(t *testing.T) {
	assert.Equal(t, "positive", validator.Positive().String())
	assert.Equal(t, "between(max=9, min=1)", validator.Between(1, 9).String())
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("returns nil for nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
	})

	t.Run("returns nil for unrelated error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
	})

	t.Run("unwraps wrapped validation errors", func(t *testing.T) {
		err := validator.Apply("", validator.NonEmpty())
		wrapped := errors.Join(errors.New("context"), err)

		assert.True(t, validator.IsValidationError(wrapped))
		assert.True(t, validator.ExtractValidationErrors(wrapped).Has("non_empty"))
	})

	t.Run("IsValidationError is false for nil", func(t *testing.T) {
		assert.False(t, validator.IsValidationError(nil))
	})
}
