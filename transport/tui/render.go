package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	statusStyle = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	gridStyle   = lipgloss.NewStyle().Faint(true)

	cellStyle   = lipgloss.NewStyle().Width(3).Align(lipgloss.Center)
	cursorStyle = cellStyle.Reverse(true)

	markStyles = map[entity.Cell]lipgloss.Style{
		entity.PlayerX: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		entity.PlayerO: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
	}
)

func renderBoard(board *entity.Board, cursorRow, cursorCol int) string {
	rows := make([]string, 0, entity.BoardSide*2-1)

	for row := 0; row < entity.BoardSide; row++ {
		cells := make([]string, 0, entity.BoardSide)

		for col := 0; col < entity.BoardSide; col++ {
			cells = append(cells, renderCell(board[row*entity.BoardSide+col], row == cursorRow && col == cursorCol))
		}

		rows = append(rows, strings.Join(cells, gridStyle.Render("│")))
		if row < entity.BoardSide-1 {
			rows = append(rows, gridStyle.Render("───┼───┼───"))
		}
	}

	return boardStyle.Render(strings.Join(rows, "\n"))
}

func renderCell(cell entity.Cell, underCursor bool) string {
	text := " "
	if style, ok := markStyles[cell]; ok {
		text = style.Render(cell.String())
	}

	if underCursor {
		return cursorStyle.Render(text)
	}

	return cellStyle.Render(text)
}
