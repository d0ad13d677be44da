package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DT021/invis/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("check", logger.Requirement("natural"), logger.Field("age"))
	require.Equal(t, "check", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "requirement", g[0].Key)
	assert.Equal(t, "field", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	tests := []struct {
		attr slog.Attr
		key  string
		want string
	}{
		{logger.Requirement("natural"), "requirement", "natural"},
		{logger.Field("age"), "field", "age"},
		{logger.Class("Person"), "class", "Person"},
		{logger.SeedFile("invis.yaml"), "seed_file", "invis.yaml"},
		{logger.Component("cli"), "component", "cli"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.String())
		})
	}
}
