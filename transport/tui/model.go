package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type gameManager interface {
	NewGame(ctx context.Context) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, cell int) (*entity.Game, error)
	Restart(ctx context.Context, gameID string) (*entity.Game, error)
}

// gameMsg carries the result of a game manager call back into Update.
type gameMsg struct {
	game *entity.Game
	err  error
}

// keyHandlers maps key names to actions. Digits are handled separately.
var keyHandlers = map[string]func(Model) (Model, tea.Cmd){
	"up":    Model.moveUp,
	"k":     Model.moveUp,
	"down":  Model.moveDown,
	"j":     Model.moveDown,
	"left":  Model.moveLeft,
	"h":     Model.moveLeft,
	"right": Model.moveRight,
	"l":     Model.moveRight,
	"enter": Model.playCursor,
	" ":     Model.playCursor,
	"r":     Model.restart,
}

type Model struct {
	ctx     context.Context
	logger  *slog.Logger
	manager gameManager

	game      *entity.Game
	cursorRow int
	cursorCol int
	pending   bool
	message   string
}

func New(ctx context.Context, logger *slog.Logger, manager gameManager) Model {
	return Model{
		ctx:       ctx,
		logger:    logger.With("component", "tui"),
		manager:   manager,
		cursorRow: 1,
		cursorCol: 1,
		pending:   true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.newGame()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		if key == "q" || key == "ctrl+c" {
			return m, tea.Quit
		}

		if m.pending {
			return m, nil
		}

		if cell, ok := digitCell(key); ok {
			return m.play(cell)
		}

		if handler, ok := keyHandlers[key]; ok {
			return handler(m)
		}
	case gameMsg:
		return m.applyResult(msg), nil
	}

	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Tic-Tac-Toe"))
	sb.WriteString("\n\n")

	if m.game == nil {
		sb.WriteString(statusStyle.Render("Starting a new game..."))
		sb.WriteString("\n")
		if m.message != "" {
			sb.WriteString(errorStyle.Render(m.message))
			sb.WriteString("\n")
		}
		return sb.String()
	}

	sb.WriteString(renderBoard(&m.game.Board, m.cursorRow, m.cursorCol))
	sb.WriteString("\n")
	sb.WriteString(statusStyle.Render(m.status()))
	sb.WriteString("\n")

	if m.message != "" {
		sb.WriteString(errorStyle.Render(m.message))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("arrows/hjkl move • enter/space play • 1-9 pick cell • r restart • q quit"))
	sb.WriteString("\n")

	return sb.String()
}

func (m Model) status() string {
	game := m.game

	switch {
	case game.IsDraw():
		return "Draw. Press r to play again."
	case game.IsFinished() && game.Winner == game.HumanMark:
		return "You win! Press r to play again."
	case game.IsFinished():
		return "Bot wins. Press r to play again."
	case m.pending:
		return "Bot is thinking..."
	default:
		return fmt.Sprintf("Your turn (%s)", game.HumanMark)
	}
}

func (m Model) applyResult(msg gameMsg) Model {
	m.pending = false
	m.message = ""

	if msg.game != nil {
		m.game = msg.game
	}

	if msg.err != nil {
		m.message = describeError(msg.err)
		m.logger.Debug("game manager call failed", "error", msg.err)
	}

	return m
}

func (m Model) moveUp() (Model, tea.Cmd) {
	m.cursorRow = (m.cursorRow + entity.BoardSide - 1) % entity.BoardSide
	return m, nil
}

func (m Model) moveDown() (Model, tea.Cmd) {
	m.cursorRow = (m.cursorRow + 1) % entity.BoardSide
	return m, nil
}

func (m Model) moveLeft() (Model, tea.Cmd) {
	m.cursorCol = (m.cursorCol + entity.BoardSide - 1) % entity.BoardSide
	return m, nil
}

func (m Model) moveRight() (Model, tea.Cmd) {
	m.cursorCol = (m.cursorCol + 1) % entity.BoardSide
	return m, nil
}

func (m Model) playCursor() (Model, tea.Cmd) {
	cell, err := entity.CellIndex(m.cursorRow, m.cursorCol)
	if err != nil {
		m.message = describeError(err)
		return m, nil
	}

	return m.play(cell)
}

func (m Model) play(cell int) (Model, tea.Cmd) {
	if m.game == nil {
		return m, nil
	}

	m.cursorRow, m.cursorCol = entity.RowCol(cell)
	m.pending = true
	m.message = ""

	ctx, manager, gameID := m.ctx, m.manager, m.game.ID

	return m, func() tea.Msg {
		game, err := manager.MakeTurn(ctx, gameID, cell)
		return gameMsg{game: game, err: err}
	}
}

func (m Model) restart() (Model, tea.Cmd) {
	m.pending = true
	m.message = ""

	if m.game == nil {
		return m, m.newGame()
	}

	ctx, manager, gameID := m.ctx, m.manager, m.game.ID

	return m, func() tea.Msg {
		game, err := manager.Restart(ctx, gameID)
		return gameMsg{game: game, err: err}
	}
}

func (m Model) newGame() tea.Cmd {
	ctx, manager := m.ctx, m.manager

	return func() tea.Msg {
		game, err := manager.NewGame(ctx)
		return gameMsg{game: game, err: err}
	}
}

// digitCell maps keys "1".."9" to cells 0..8.
func digitCell(key string) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}

	return int(key[0] - '1'), true
}

func describeError(err error) string {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		return "That cell is already taken."
	case errors.Is(err, apperror.ErrGameFinished):
		return "The game is over. Press r to play again."
	case errors.Is(err, apperror.ErrNotYourTurn):
		return "Wait for the bot to move."
	case errors.Is(err, apperror.ErrInvalidCell):
		return "No such cell."
	default:
		return "Error: " + err.Error()
	}
}
