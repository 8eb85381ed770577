package entity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is a single human-versus-bot session.
type Game struct {
	ID        string `json:"id"`
	Board     Board  `json:"board"`
	Winner    Cell   `json:"winner"`
	Status    string `json:"status"`
	Turn      Cell   `json:"player_turn"`
	HumanMark Cell   `json:"human_mark"`
	BotMark   Cell   `json:"bot_mark"`
}

func NewGame(id string, humanMark Cell) *Game {
	return &Game{
		ID:        id,
		Board:     Board{},
		Turn:      PlayerX,
		Status:    StatusWaiting,
		HumanMark: humanMark,
		BotMark:   humanMark.Opponent(),
	}
}

// Start moves a waiting game to ongoing.
func (that *Game) Start() {
	if that.IsWaiting() {
		that.Status = StatusOngoing
	}
}

func (that *Game) UpdateGameState() {
	if winner, ok := that.Board.CheckWinner(); ok {
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = Empty

		return
	}

	// the game will continue until all the squares are full
	if that.Board.IsFull() {
		that.Winner = Empty
		that.Status = StatusFinished
		that.Turn = Empty

		return
	}

	that.Status = StatusOngoing
}

func (that *Game) MakeTurn(playerMark Cell, cell int) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if cell < 0 || cell >= BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if !that.Board.MakeMove(cell, playerMark) {
		return apperror.ErrCellOccupied
	}

	that.Turn = playerMark.Opponent()

	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

// IsDraw reports a finished game without a winner.
func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == Empty
}

func (that *Game) IsBotTurn() bool {
	return that.IsOngoing() && that.Turn == that.BotMark
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// GetRandomMarks returns the human mark first and the bot mark second.
func GetRandomMarks() (Cell, Cell) {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return PlayerX, PlayerO
	}
	return PlayerO, PlayerX
}
