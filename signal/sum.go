// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"fmt"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Sum is the elementwise sum of an ordered list of signals.
type Sum struct {
	operands []Signal
}

// NewSum builds a Sum of operands, in order.
func NewSum(operands ...Signal) (*Sum, error) {
	if len(operands) == 0 {
		return nil, ErrNoOperands
	}

	for i, op := range operands {
		if sum, ok := op.(*Sum); op == nil || (ok && sum == nil) {
			return nil, fmt.Errorf("%w: operand %d is nil", ErrInvalidParameter, i)
		}
	}

	return &Sum{operands: slices.Clone(operands)}, nil
}

// Add returns a+b. Sums on either side are flattened so that repeated
// addition yields one Sum with all leaf operands in order. A nil operand is
// ErrInvalidParameter, as with NewSum.
func Add(a, b Signal) (*Sum, error) {
	var ops []Signal
	for _, s := range []Signal{a, b} {
		if sum, ok := s.(*Sum); ok && sum != nil {
			ops = append(ops, sum.operands...)
			continue
		}
		ops = append(ops, s)
	}

	return NewSum(ops...)
}

// Operands returns the summed signals, in order.
func (s *Sum) Operands() []Signal {
	return slices.Clone(s.operands)
}

// Period is the largest operand period.
//
// This is exact only when every operand frequency is an integer multiple of
// a shared fundamental. It is meant for choosing a plotting span.
func (s *Sum) Period() float64 {
	var p float64
	for _, op := range s.operands {
		p = max(p, op.Period())
	}
	return p
}

// Evaluate evaluates every operand on ts and adds the results.
func (s *Sum) Evaluate(ts []float64) ([]float64, error) {
	acc := make([]float64, len(ts))

	for i, op := range s.operands {
		ys, err := op.Evaluate(ts)
		if err != nil {
			return nil, fmt.Errorf("operand %d: %w", i, err)
		}

		if len(ys) != len(ts) {
			return nil, fmt.Errorf("%w: operand %d returned %d samples for %d times", ErrLengthMismatch, i, len(ys), len(ts))
		}

		floats.Add(acc, ys)
	}

	return acc, nil
}

func (s *Sum) String() string {
	parts := make([]string, len(s.operands))
	for i, op := range s.operands {
		parts[i] = fmt.Sprint(op)
	}
	return strings.Join(parts, " + ")
}
