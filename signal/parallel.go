// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// EvaluateParallel evaluates s on ts in chunks of at most chunk times, one
// goroutine per chunk. Each output sample depends only on its own time, so
// the result equals s.Evaluate(ts).
func EvaluateParallel(ctx context.Context, s Signal, ts []float64, chunk int) ([]float64, error) {
	if chunk <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChunk, chunk)
	}

	out := make([]float64, len(ts))
	g, ctx := errgroup.WithContext(ctx)

	for lo := 0; lo < len(ts); lo += chunk {
		hi := min(lo+chunk, len(ts))

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			ys, err := s.Evaluate(ts[lo:hi])
			if err != nil {
				return err
			}

			if len(ys) != hi-lo {
				return fmt.Errorf("%w: chunk [%d,%d) returned %d samples", ErrLengthMismatch, lo, hi, len(ys))
			}

			copy(out[lo:hi], ys)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
