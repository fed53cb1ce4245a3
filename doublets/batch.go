package doublets

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// SolveAll computes MinLadder for every query using at most workers
// concurrent searches over the shared lexicon. Results are index-aligned
// with queries. The first error (a cancelled or expired ctx) aborts the
// batch and is returned with a nil slice.
func (s *Solver) SolveAll(ctx context.Context, queries []Query, workers int) ([]Result, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("%w: workers must be positive (%d)", ErrOptionViolation, workers)
	}

	ctx, span := s.tracer.Start(ctx, "doublets.SolveAll",
		trace.WithAttributes(
			attribute.Int("queries", len(queries)),
			attribute.Int("workers", workers),
		),
	)
	defer span.End()

	results := make([]Result, len(queries))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, q := range queries {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			ladder, err := s.MinLadderContext(gCtx, q.Start, q.End)
			if err != nil {
				return fmt.Errorf("doublets: query %d (%q→%q): %w", i, q.Start, q.End, err)
			}
			results[i] = Result{Query: q, Ladder: ladder}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	solved := 0
	for i := range results {
		if len(results[i].Ladder) > 0 {
			solved++
		}
	}
	span.SetAttributes(attribute.Int("solved", solved))
	s.logger.DebugContext(ctx, "batch completed",
		slog.Int("queries", len(queries)),
		slog.Int("solved", solved),
		slog.Int("workers", workers),
	)

	return results, nil
}
