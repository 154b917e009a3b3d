// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"fmt"
	"math"
	"strings"
)

// Kernel is the periodic function a Sinusoid applies to its phase.
type Kernel uint8

const (
	Sine Kernel = iota + 1
	Cosine
)

// Apply evaluates the kernel at phase radians. An invalid kernel yields NaN.
func (k Kernel) Apply(phase float64) float64 {
	switch k {
	case Sine:
		return math.Sin(phase)
	case Cosine:
		return math.Cos(phase)
	default:
		return math.NaN()
	}
}

// Valid reports whether k is Sine or Cosine.
func (k Kernel) Valid() bool {
	return k == Sine || k == Cosine
}

func (k Kernel) String() string {
	switch k {
	case Sine:
		return "sin"
	case Cosine:
		return "cos"
	default:
		return fmt.Sprintf("Kernel(%d)", uint8(k))
	}
}

// ParseKernel accepts "sin", "sine", "cos" and "cosine", case-insensitively.
func ParseKernel(s string) (Kernel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sin", "sine":
		return Sine, nil
	case "cos", "cosine":
		return Cosine, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKernel, s)
	}
}

func (k Kernel) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKernel, uint8(k))
	}
	return []byte(k.String()), nil
}

func (k *Kernel) UnmarshalText(text []byte) error {
	parsed, err := ParseKernel(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
