package sweep

import (
	"context"
	"sync"

	"github.com/lmarques/relmet/internal/frame"
)

// Ensemble runs the same sweep over several bodies in parallel. Sweeps are
// pure computations with no shared mutable state, so each body gets its own
// goroutine.
type Ensemble struct {
	cfg Config
}

func NewEnsemble(cfg Config) *Ensemble {
	return &Ensemble{cfg: cfg}
}

func (e *Ensemble) Run(ctx context.Context, bodies []frame.Body) ([]*Result, error) {
	results := make([]*Result, len(bodies))
	errs := make([]error, len(bodies))

	var wg sync.WaitGroup
	for i, body := range bodies {
		wg.Add(1)
		go func(idx int, b frame.Body) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				errs[idx] = ctx.Err()
				return
			default:
			}

			results[idx], errs[idx] = Run(b, e.cfg)
		}(i, body)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
