package metrics_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DT021/invis/pkg/contract"
	"github.com/DT021/invis/pkg/metrics"
	"github.com/DT021/invis/pkg/validator"
)

func TestObserver(t *testing.T) {
	promReg := prometheus.NewRegistry()
	obs := metrics.NewObserver(promReg)
	reg := contract.NewRegistry(contract.WithObserver(obs))

	require.NoError(t, reg.Check("age", "natural", 3))
	require.NoError(t, reg.Check("age", "natural", 4))
	require.Error(t, reg.Check("age", "natural", 0))
	require.Error(t, reg.Check("age", "natural", "3"))
	require.NoError(t, reg.Check("name", "string", "ada"))

	expected := `
# HELP invis_checks_total Requirement checks by requirement and outcome.
# TYPE invis_checks_total counter
invis_checks_total{outcome="passed",requirement="natural"} 2
invis_checks_total{outcome="passed",requirement="string"} 1
invis_checks_total{outcome="rule_failed",requirement="natural"} 1
invis_checks_total{outcome="type_mismatch",requirement="natural"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(promReg, strings.NewReader(expected), "invis_checks_total"))
}

func TestObserver_DuplicateRegistration(t *testing.T) {
	promReg := prometheus.NewRegistry()
	metrics.NewObserver(promReg)
	assert.Panics(t, func() { metrics.NewObserver(promReg) })
}

func TestOutcome(t *testing.T) {
	req := contract.TypeOf[int]().Extend("small", validator.Lt(10))

	assert.Equal(t, metrics.OutcomePassed, metrics.Outcome(nil))
	assert.Equal(t, metrics.OutcomeTypeMismatch, metrics.Outcome(req.Check("n", "x")))
	assert.Equal(t, metrics.OutcomeRuleFailed, metrics.Outcome(req.Check("n", 11)))
	assert.Equal(t, metrics.OutcomeTypeMismatch, metrics.Outcome(errors.New("other")))
}

func TestRegisterRegistry(t *testing.T) {
	promReg := prometheus.NewRegistry()
	reg := contract.NewRegistry(contract.WithoutBuiltins())
	require.NoError(t, metrics.RegisterRegistry(promReg, reg))

	count := func() float64 {
		families, err := promReg.Gather()
		require.NoError(t, err)
		require.Len(t, families, 1)
		return families[0].GetMetric()[0].GetGauge().GetValue()
	}
	assert.Equal(t, 1.0, count())

	_, err := reg.Define("tiny", "callable")
	require.NoError(t, err)
	assert.Equal(t, 2.0, count())

	assert.Error(t, metrics.RegisterRegistry(promReg, reg))
}
