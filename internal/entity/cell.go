package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Cell is the content of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	PlayerX
	PlayerO
)

var ErrUnknownMark = errors.New("unknown mark")

// Opponent returns the other player's mark. Empty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

func (that Cell) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

// ParseCell reads a player mark. "", ".", "_" and "-" are Empty.
func ParseCell(mark string) (Cell, error) {
	switch strings.ToUpper(strings.TrimSpace(mark)) {
	case "X":
		return PlayerX, nil
	case "O":
		return PlayerO, nil
	case "", ".", "_", "-":
		return Empty, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrUnknownMark, mark)
	}
}
