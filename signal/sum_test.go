// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSignal returns a fixed slice regardless of the times it is given.
type stubSignal struct {
	period float64
	ys     []float64
	err    error
}

func (s stubSignal) Period() float64 { return s.period }

func (s stubSignal) Evaluate(ts []float64) ([]float64, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.ys, nil
}

func mustAdd(t *testing.T, a, b Signal) *Sum {
	t.Helper()

	sum, err := Add(a, b)
	require.NoError(t, err)
	return sum
}

func TestSum_Evaluate(t *testing.T) {
	t.Parallel()

	sum := mustAdd(t, mustSinusoid(t, 1, 1, 0, Sine), mustSinusoid(t, 1, 2, 0, Cosine))

	got, err := sum.Evaluate([]float64{0.0, 0.25, 0.5})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 1, -2}, got, tolerance)
}

func TestSum_EqualsOperandSum(t *testing.T) {
	t.Parallel()

	a := mustSinusoid(t, 440, 1, 0, Cosine)
	b := mustSinusoid(t, 880, 0.5, 0.3, Sine)
	ts := []float64{0, 0.0001, 0.00123, 0.1, 0.5, 2.25}

	got, err := mustAdd(t, a, b).Evaluate(ts)
	require.NoError(t, err)

	ya, err := a.Evaluate(ts)
	require.NoError(t, err)
	yb, err := b.Evaluate(ts)
	require.NoError(t, err)
	want, err := AddSamples(ya, yb)
	require.NoError(t, err)

	assert.InDeltaSlice(t, want, got, 1e-12)
}

func TestSum_AssociativeAndCommutative(t *testing.T) {
	t.Parallel()

	a := mustSinusoid(t, 100, 1, 0, Sine)
	b := mustSinusoid(t, 250, 0.3, 1, Cosine)
	c := mustSinusoid(t, 333, 2, -0.5, Sine)
	ts := []float64{0, 0.001, 0.017, 0.2, 0.9}

	left, err := mustAdd(t, mustAdd(t, a, b), c).Evaluate(ts)
	require.NoError(t, err)

	right, err := mustAdd(t, a, mustAdd(t, b, c)).Evaluate(ts)
	require.NoError(t, err)

	swapped, err := mustAdd(t, c, mustAdd(t, b, a)).Evaluate(ts)
	require.NoError(t, err)

	assert.InDeltaSlice(t, left, right, 1e-9)
	assert.InDeltaSlice(t, left, swapped, 1e-9)
}

func TestAdd_Flattens(t *testing.T) {
	t.Parallel()

	a := mustSinusoid(t, 1, 1, 0, Sine)
	b := mustSinusoid(t, 2, 1, 0, Sine)
	c := mustSinusoid(t, 3, 1, 0, Sine)
	d := mustSinusoid(t, 4, 1, 0, Sine)

	sum := mustAdd(t, mustAdd(t, a, b), mustAdd(t, c, d))
	assert.Equal(t, []Signal{a, b, c, d}, sum.Operands())
}

func TestAdd_NilOperand(t *testing.T) {
	t.Parallel()

	s := mustSinusoid(t, 1, 1, 0, Sine)

	var nilSum *Sum
	for name, tt := range map[string][2]Signal{
		"nil right":     {s, nil},
		"nil left":      {nil, s},
		"both nil":      {nil, nil},
		"typed nil sum": {s, nilSum},
	} {
		sum, err := Add(tt[0], tt[1])
		assert.Nil(t, sum, name)
		assert.ErrorIs(t, err, ErrInvalidParameter, name)
	}

	_, err := NewSum(s, nilSum)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestNewSum(t *testing.T) {
	t.Parallel()

	a := mustSinusoid(t, 1, 1, 0, Sine)
	b := mustSinusoid(t, 2, 1, 0, Cosine)
	c := mustSinusoid(t, 4, 0.5, 0, Sine)

	sum, err := NewSum(a, b, c)
	require.NoError(t, err)
	assert.Len(t, sum.Operands(), 3)

	single, err := NewSum(a)
	require.NoError(t, err)
	got, err := single.Evaluate(quarterTimes)
	require.NoError(t, err)
	want, err := a.Evaluate(quarterTimes)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = NewSum()
	assert.ErrorIs(t, err, ErrNoOperands)

	_, err = NewSum(a, nil)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestNewSum_CopiesOperands(t *testing.T) {
	t.Parallel()

	ops := []Signal{mustSinusoid(t, 1, 1, 0, Sine), mustSinusoid(t, 2, 1, 0, Sine)}
	sum, err := NewSum(ops...)
	require.NoError(t, err)

	ops[0] = mustSinusoid(t, 99, 1, 0, Sine)
	assert.Equal(t, 1.0, sum.Period())
}

func TestSum_Period(t *testing.T) {
	t.Parallel()

	sum := mustAdd(t, mustSinusoid(t, 440, 1, 0, Sine), mustSinusoid(t, 880, 0.5, 0, Sine))
	assert.Equal(t, 1.0/440, sum.Period())

	nested := mustAdd(t, sum, mustSinusoid(t, 110, 1, 0, Cosine))
	assert.Equal(t, 1.0/110, nested.Period())
}

func TestSum_LengthMismatch(t *testing.T) {
	t.Parallel()

	short := stubSignal{period: 1, ys: []float64{1}}
	sum := mustAdd(t, mustSinusoid(t, 1, 1, 0, Sine), short)

	_, err := sum.Evaluate([]float64{0, 0.5})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestSum_PropagatesOperandError(t *testing.T) {
	t.Parallel()

	boom := errors.New("operand failed")
	sum := mustAdd(t, mustSinusoid(t, 1, 1, 0, Sine), stubSignal{period: 1, err: boom})

	_, err := sum.Evaluate([]float64{0})
	assert.ErrorIs(t, err, boom)
}

func TestSum_String(t *testing.T) {
	t.Parallel()

	sum := mustAdd(t, mustSinusoid(t, 440, 1, 0, Cosine), mustSinusoid(t, 880, 0.5, 0, Sine))
	assert.Equal(t, "cos(freq=440 amp=1 offset=0) + sin(freq=880 amp=0.5 offset=0)", sum.String())
}

func TestAddSamples(t *testing.T) {
	t.Parallel()

	got, err := AddSamples([]float64{1, 2, 3}, []float64{-1, 0.5, 10})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2.5, 13}, got)

	_, err = AddSamples([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	empty, err := AddSamples(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
