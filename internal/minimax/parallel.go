package minimax

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// BestMoveParallel scores each top-level move in its own goroutine, every one
// on a private copy of board. It returns the same move as BestMove.
//
// workers limits the number of concurrent branches; zero or less means
// runtime.NumCPU().
func (that *Engine) BestMoveParallel(ctx context.Context, board entity.Board, ai entity.Cell, workers int) (int, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	start := time.Now()
	moves := board.AvailableMoves()
	scores := make([]int, len(moves))
	searches := make([]*search, len(moves))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for i, move := range moves {
		i, move := i, move
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			branch := board
			searches[i] = &search{ai: ai, opponent: ai.Opponent()}
			scores[i] = searches[i].scoreMove(&branch, move, ai, 1, false)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return NoMove, fmt.Errorf("parallel search interrupted: %w", err)
	}

	bestMove := NoMove
	bestScore := math.MinInt
	stats := Stats{}

	for i, move := range moves {
		if scores[i] > bestScore {
			bestScore = scores[i]
			bestMove = move
		}

		stats.Nodes += searches[i].nodes
		stats.Leaves += searches[i].leaves
	}

	stats.Duration = time.Since(start)
	that.stats = stats

	that.logger.Debug("parallel search finished",
		"ai", ai.String(),
		"move", bestMove,
		"score", bestScore,
		"workers", workers,
		"nodes", stats.Nodes,
		"duration", stats.Duration,
	)

	return bestMove, nil
}
