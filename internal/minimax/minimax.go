// Package minimax picks tic-tac-toe moves by exhaustive game-tree search.
//
// The search mutates the board it is given in place and reverts every
// simulated move before returning, so the caller's board is unchanged after
// BestMove returns. The board must not be touched by anyone else meanwhile.
package minimax

import (
	"log/slog"
	"math"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	winScore  = 10
	drawScore = 0

	// NoMove is returned by BestMove when the board has no empty cell.
	NoMove = -1
)

// Stats describes the last search.
type Stats struct {
	Nodes    int
	Leaves   int
	Duration time.Duration
}

// Engine runs one search at a time; Stats is overwritten by every call.
type Engine struct {
	logger *slog.Logger

	stats Stats
}

func New(logger *slog.Logger) *Engine {
	return &Engine{
		logger: logger.With("component", "minimax"),
	}
}

// Stats returns the counters of the most recent BestMove call.
func (that *Engine) Stats() Stats {
	return that.stats
}

// BestMove returns the move that maximizes the score for ai. Among equally
// scored moves the lowest index wins. The board must have an empty cell.
func (that *Engine) BestMove(board *entity.Board, ai entity.Cell) int {
	search := &search{ai: ai, opponent: ai.Opponent()}
	start := time.Now()

	bestMove := NoMove
	bestScore := math.MinInt

	for _, move := range board.AvailableMoves() {
		score := search.scoreMove(board, move, ai, 1, false)
		if score > bestScore {
			bestScore = score
			bestMove = move
		}
	}

	that.stats = Stats{
		Nodes:    search.nodes,
		Leaves:   search.leaves,
		Duration: time.Since(start),
	}

	that.logger.Debug("search finished",
		"ai", ai.String(),
		"move", bestMove,
		"score", bestScore,
		"nodes", search.nodes,
		"leaves", search.leaves,
		"duration", that.stats.Duration,
	)

	return bestMove
}

// search holds the per-call state of one top-level search.
type search struct {
	ai       entity.Cell
	opponent entity.Cell

	nodes  int
	leaves int
}

// scoreMove plays move as mark, scores the resulting position and reverts it.
func (that *search) scoreMove(board *entity.Board, move int, mark entity.Cell, depth int, maximizing bool) int {
	undo, _ := board.Apply(move, mark)
	defer undo()

	return that.minimax(board, depth, maximizing)
}

func (that *search) minimax(board *entity.Board, depth int, maximizing bool) int {
	that.nodes++

	if winner, ok := board.CheckWinner(); ok {
		that.leaves++
		if winner == that.ai {
			return winScore - depth
		}
		return depth - winScore
	}

	if board.IsFull() {
		that.leaves++
		return drawScore
	}

	if maximizing {
		best := math.MinInt
		for _, move := range board.AvailableMoves() {
			best = max(best, that.scoreMove(board, move, that.ai, depth+1, false))
		}
		return best
	}

	best := math.MaxInt
	for _, move := range board.AvailableMoves() {
		best = min(best, that.scoreMove(board, move, that.opponent, depth+1, true))
	}
	return best
}
