// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKernel_Apply(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.0, Sine.Apply(math.Pi/2), tolerance)
	assert.InDelta(t, -1.0, Cosine.Apply(math.Pi), tolerance)
	assert.True(t, math.IsNaN(Kernel(0).Apply(1)))
	assert.True(t, math.IsNaN(Kernel(9).Apply(1)))
}

func TestKernel_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "sin", Sine.String())
	assert.Equal(t, "cos", Cosine.String())
	assert.Equal(t, "Kernel(9)", Kernel(9).String())
}

func TestParseKernel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Kernel
	}{
		{"sin", Sine},
		{"Sine", Sine},
		{" cos ", Cosine},
		{"COSINE", Cosine},
	}

	for _, tt := range tests {
		got, err := ParseKernel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseKernel("tan")
	assert.ErrorIs(t, err, ErrUnknownKernel)
}

func TestKernel_Text(t *testing.T) {
	t.Parallel()

	b, err := Cosine.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "cos", string(b))

	var k Kernel
	require.NoError(t, k.UnmarshalText([]byte("sine")))
	assert.Equal(t, Sine, k)

	assert.ErrorIs(t, k.UnmarshalText([]byte("square")), ErrUnknownKernel)
	assert.Equal(t, Sine, k)

	_, err = Kernel(0).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownKernel)
}
