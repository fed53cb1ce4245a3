package doublets

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/doublets/bfs"
	"github.com/katalvlaran/doublets/dfs"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// MinLadder returns a minimum-length word ladder from start to end, or an
// empty ladder if none exists. Both words are normalized first. If either is
// not in the lexicon, or their lengths differ, the ladder is empty; if they
// are equal the ladder is the single word.
func (s *Solver) MinLadder(start, end string) []string {
	// Background is never cancelled and neighbor generation cannot fail.
	ladder, _ := s.MinLadderContext(context.Background(), start, end)

	return ladder
}

// MinLadderContext is MinLadder with cancellation. The only possible error
// is ctx.Err().
//
// The search is breadth-first from start, expanding each word's Neighbors
// in order and stopping the moment end is first discovered; the predecessor
// chain recorded at that point is a shortest ladder.
func (s *Solver) MinLadderContext(ctx context.Context, start, end string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "doublets.MinLadder",
		trace.WithAttributes(
			attribute.String("start", start),
			attribute.String("end", end),
		),
	)
	defer span.End()

	from, to, ladder, done := s.endpoints(start, end)
	if done {
		span.SetAttributes(attribute.Int("ladder_length", len(ladder)))
		return ladder, nil
	}

	res, err := bfs.BFS(s.neighborIDs, from, bfs.WithContext(ctx), bfs.WithTarget(to))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if res.Found {
		// PathTo cannot fail once the target is found
		ladder, _ = res.PathTo(to)
	}

	span.SetAttributes(
		attribute.Int("explored", len(res.Depth)),
		attribute.Int("ladder_length", len(ladder)),
	)
	s.logger.DebugContext(ctx, "min ladder search completed",
		slog.String("start", from),
		slog.String("end", to),
		slog.Int("expanded", len(res.Order)),
		slog.Int("explored", len(res.Depth)),
		slog.Int("ladder_length", len(ladder)),
	)

	return ladder, nil
}

// Ladder returns some word ladder from start to end, not necessarily the
// shortest, or an empty ladder if none exists. The edge policy is the same
// as MinLadder's.
func (s *Solver) Ladder(start, end string) []string {
	ladder, _ := s.LadderContext(context.Background(), start, end)

	return ladder
}

// LadderContext is Ladder with cancellation. The search is depth-first with
// backtracking: it follows the first unexplored neighbor until it reaches end
// or runs out of words, then steps back and tries the next one.
func (s *Solver) LadderContext(ctx context.Context, start, end string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "doublets.Ladder",
		trace.WithAttributes(
			attribute.String("start", start),
			attribute.String("end", end),
		),
	)
	defer span.End()

	from, to, ladder, done := s.endpoints(start, end)
	if done {
		span.SetAttributes(attribute.Int("ladder_length", len(ladder)))
		return ladder, nil
	}

	res, err := dfs.Search(s.neighborIDs, from, to, dfs.WithContext(ctx))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("explored", res.Visited),
		attribute.Int("backtracks", res.Backtracks),
		attribute.Int("ladder_length", len(res.Path)),
	)
	s.logger.DebugContext(ctx, "ladder search completed",
		slog.String("start", from),
		slog.String("end", to),
		slog.Int("explored", res.Visited),
		slog.Int("backtracks", res.Backtracks),
		slog.Int("ladder_length", len(res.Path)),
	)

	return res.Path, nil
}
