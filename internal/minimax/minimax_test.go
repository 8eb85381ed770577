package minimax

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() *Engine {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func mustParse(t *testing.T, text string) entity.Board {
	t.Helper()

	board, err := entity.ParseBoard(text)
	require.NoError(t, err)

	return board
}

func TestEngine_BestMove(t *testing.T) {
	testCases := []struct {
		name  string
		board string
		ai    entity.Cell
		want  int
	}{
		{name: "completes own row", board: "OO. ... ...", ai: entity.PlayerO, want: 2},
		{name: "blocks opponent row", board: "XX. ... ...", ai: entity.PlayerO, want: 2},
		{name: "prefers winning over blocking", board: "XX. OO. X..", ai: entity.PlayerO, want: 5},
		{name: "blocks a column", board: "X.. X.. .O.", ai: entity.PlayerO, want: 6},
		{name: "blocks a diagonal", board: "X.. .X. ...", ai: entity.PlayerO, want: 8},
		{name: "takes the last cell", board: "XOX XOO OX.", ai: entity.PlayerX, want: 8},
		{name: "answers a corner with the center", board: "X.. ... ...", ai: entity.PlayerO, want: 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Given: a board and the AI mark
			engine := newEngine()
			board := mustParse(t, tc.board)
			before := board

			// When: the engine searches for the best move
			move := engine.BestMove(&board, tc.ai)

			// Then: it returns the expected move and leaves the board as it was
			assert.Equal(t, tc.want, move)
			assert.Equal(t, before, board)
		})
	}
}

func TestEngine_BestMoveScoring(t *testing.T) {
	t.Run("Immediate win scores ten minus one", func(t *testing.T) {
		// Given: O can win with cell 2
		board := mustParse(t, "OO. XX. X..")
		s := &search{ai: entity.PlayerO, opponent: entity.PlayerX}

		// When: scoring the winning move
		score := s.scoreMove(&board, 2, entity.PlayerO, 1, false)

		// Then: the depth-one win is worth 9
		assert.Equal(t, 9, score)
	})

	t.Run("Immediate loss scores depth minus ten", func(t *testing.T) {
		// Given: X threatens the top row and O plays elsewhere
		board := mustParse(t, "XX. O.. ...")
		s := &search{ai: entity.PlayerO, opponent: entity.PlayerX}

		// When: scoring a move that ignores the threat
		score := s.scoreMove(&board, 8, entity.PlayerO, 1, false)

		// Then: X wins at depth two
		assert.Equal(t, -8, score)
	})

	t.Run("Forced draw scores zero", func(t *testing.T) {
		// Given: the last move fills the board without a line
		board := mustParse(t, "XOX XOO OX.")
		s := &search{ai: entity.PlayerX, opponent: entity.PlayerO}

		assert.Equal(t, 0, s.scoreMove(&board, 8, entity.PlayerX, 1, false))
	})

	t.Run("Perfect play from an empty board is a draw", func(t *testing.T) {
		board := entity.Board{}
		s := &search{ai: entity.PlayerX, opponent: entity.PlayerO}

		assert.Equal(t, 0, s.minimax(&board, 0, true))
		assert.Equal(t, entity.Board{}, board)
	})
}

func TestEngine_BestMoveOnFullBoard(t *testing.T) {
	engine := newEngine()
	board := mustParse(t, "XOX XOO OXX")

	assert.Equal(t, NoMove, engine.BestMove(&board, entity.PlayerO))
}

func TestEngine_Determinism(t *testing.T) {
	// Given: the same position searched repeatedly
	board := mustParse(t, "X.. .O. ..X")
	engine := newEngine()
	first := engine.BestMove(&board, entity.PlayerO)

	// Then: every search returns the same move
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, engine.BestMove(&board, entity.PlayerO))
	}
}

func TestEngine_Stats(t *testing.T) {
	engine := newEngine()
	board := mustParse(t, "XOX XOO OX.")

	engine.BestMove(&board, entity.PlayerX)

	stats := engine.Stats()
	assert.Equal(t, 1, stats.Nodes)
	assert.Equal(t, 1, stats.Leaves)
}

// opponentCanWin walks every opponent reply against the engine's answers and
// reports whether any line of play ends with the opponent winning.
func opponentCanWin(t *testing.T, engine *Engine, board *entity.Board, toMove, ai entity.Cell) bool {
	t.Helper()

	if winner, ok := board.CheckWinner(); ok {
		return winner != ai
	}

	if board.IsFull() {
		return false
	}

	if toMove == ai {
		before := *board
		move := engine.BestMove(board, ai)
		require.Equal(t, before, *board, "search must restore the board")

		undo, ok := board.Apply(move, ai)
		require.True(t, ok)
		defer undo()

		return opponentCanWin(t, engine, board, toMove.Opponent(), ai)
	}

	for _, move := range board.AvailableMoves() {
		undo, ok := board.Apply(move, toMove)
		require.True(t, ok)

		lost := opponentCanWin(t, engine, board, toMove.Opponent(), ai)
		undo()

		if lost {
			return true
		}
	}

	return false
}

func TestEngine_NeverLoses(t *testing.T) {
	t.Run("Engine playing second", func(t *testing.T) {
		engine := newEngine()
		board := entity.Board{}

		assert.False(t, opponentCanWin(t, engine, &board, entity.PlayerX, entity.PlayerO))
		assert.Equal(t, entity.Board{}, board)
	})

	t.Run("Engine playing first", func(t *testing.T) {
		engine := newEngine()
		board := entity.Board{}

		assert.False(t, opponentCanWin(t, engine, &board, entity.PlayerX, entity.PlayerX))
		assert.Equal(t, entity.Board{}, board)
	})
}

func TestEngine_BestMoveParallel(t *testing.T) {
	t.Run("Agrees with the sequential search", func(t *testing.T) {
		engine := newEngine()
		positions := []string{
			"... ... ...",
			"X.. ... ...",
			"OO. ... ...",
			"XX. ... ...",
			"X.. .O. ..X",
			"XO. .X. ..O",
		}

		for _, text := range positions {
			for _, ai := range []entity.Cell{entity.PlayerX, entity.PlayerO} {
				board := mustParse(t, text)

				want := engine.BestMove(&board, ai)
				got, err := engine.BestMoveParallel(context.Background(), board, ai, 3)

				require.NoError(t, err)
				assert.Equal(t, want, got, "board %q ai %s", text, ai)
			}
		}
	})

	t.Run("Leaves the caller's board untouched", func(t *testing.T) {
		engine := newEngine()
		board := mustParse(t, "X.. ... ...")
		before := board

		_, err := engine.BestMoveParallel(context.Background(), board, entity.PlayerO, 0)

		require.NoError(t, err)
		assert.Equal(t, before, board)
	})

	t.Run("Returns the context error when cancelled", func(t *testing.T) {
		engine := newEngine()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		move, err := engine.BestMoveParallel(ctx, entity.Board{}, entity.PlayerX, 1)

		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, NoMove, move)
	})

	t.Run("Full board yields no move", func(t *testing.T) {
		engine := newEngine()

		move, err := engine.BestMoveParallel(context.Background(), mustParse(t, "XOX XOO OXX"), entity.PlayerO, 2)

		require.NoError(t, err)
		assert.Equal(t, NoMove, move)
	})
}
