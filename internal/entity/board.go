package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const (
	BoardSide = 3
	BoardSize = BoardSide * BoardSide
)

var (
	ErrMalformedBoard = errors.New("malformed board")

	// WinCombos lists every line in the order CheckWinner inspects them:
	// rows top to bottom, columns left to right, then both diagonals.
	WinCombos = [8][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

// Board is the 3x3 grid in row-major order: index = row*3 + col.
//
// Board does not track whose turn it is. Callers alternate marks.
type Board [BoardSize]Cell

// CellIndex converts a (row, col) pair to a linear cell index.
func CellIndex(row, col int) (int, error) {
	if row < 0 || row >= BoardSide || col < 0 || col >= BoardSide {
		return 0, fmt.Errorf("%w: row %d col %d", apperror.ErrInvalidCell, row, col)
	}

	return row*BoardSide + col, nil
}

// RowCol converts a linear cell index to its (row, col) pair.
func RowCol(index int) (int, int) {
	return index / BoardSide, index % BoardSide
}

// IsFull reports whether no cell is Empty.
func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == Empty {
			return false
		}
	}

	return true
}

// CheckWinner returns the mark of the first complete line found in WinCombos
// order. The second result is false when no line is complete.
func (that *Board) CheckWinner() (Cell, bool) {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != Empty && a == b && b == c {
			return a, true
		}
	}

	return Empty, false
}

// MakeMove occupies position with mark if the cell is Empty. It returns false
// and leaves the board untouched otherwise.
func (that *Board) MakeMove(position int, mark Cell) bool {
	if position < 0 || position >= BoardSize {
		return false
	}

	if mark == Empty || that[position] != Empty {
		return false
	}

	that[position] = mark

	return true
}

// UndoMove resets position to Empty whatever it holds. Callers must only undo
// cells they set themselves.
func (that *Board) UndoMove(position int) {
	that[position] = Empty
}

// Apply makes the move and returns a func that reverts it. When the move is
// rejected ok is false and undo does nothing.
func (that *Board) Apply(position int, mark Cell) (func(), bool) {
	if !that.MakeMove(position, mark) {
		return func() {}, false
	}

	return func() { that.UndoMove(position) }, true
}

// AvailableMoves returns every Empty index in ascending order.
func (that *Board) AvailableMoves() []int {
	moves := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == Empty {
			moves = append(moves, i)
		}
	}

	return moves
}

// Count returns how many cells hold mark.
func (that *Board) Count(mark Cell) int {
	count := 0
	for _, cell := range that {
		if cell == mark {
			count++
		}
	}

	return count
}

func (that *Board) String() string {
	var sb strings.Builder

	for i, cell := range that {
		if cell == Empty {
			sb.WriteByte('.')
		} else {
			sb.WriteString(cell.String())
		}

		if i%BoardSide == BoardSide-1 {
			if i != BoardSize-1 {
				sb.WriteByte('\n')
			}
		} else {
			sb.WriteByte(' ')
		}
	}

	return sb.String()
}

// ParseBoard reads nine cell tokens (X, O, '.', '_' or '-'). Whitespace, '|'
// and ',' are ignored, so both "XX.|...|..." and the String form parse.
func ParseBoard(text string) (Board, error) {
	var board Board

	position := 0
	for _, r := range text {
		switch r {
		case ' ', '\t', '\n', '\r', '|', ',':
			continue
		}

		if position >= BoardSize {
			return Board{}, fmt.Errorf("%w: more than %d cells", ErrMalformedBoard, BoardSize)
		}

		cell, err := ParseCell(string(r))
		if err != nil {
			return Board{}, fmt.Errorf("%w: %w", ErrMalformedBoard, err)
		}

		board[position] = cell
		position++
	}

	if position != BoardSize {
		return Board{}, fmt.Errorf("%w: got %d cells, want %d", ErrMalformedBoard, position, BoardSize)
	}

	return board, nil
}
