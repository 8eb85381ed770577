package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
)

var ErrNotBotTurn = errors.New("it's not the bot's turn")

// Player decides which cell mark should take next on board.
type Player interface {
	DecideMove(ctx context.Context, board entity.Board, mark entity.Cell) (int, error)
}

type BotService interface {
	Player

	MakeTurn(ctx context.Context, game *entity.Game) error
}

type BotOptions struct {
	Parallel bool
	Workers  int
}

type botService struct {
	logger  *slog.Logger
	engine  *minimax.Engine
	options BotOptions
}

func NewBotService(logger *slog.Logger, engine *minimax.Engine, options BotOptions) BotService {
	return &botService{
		logger:  logger.With("component", "bot"),
		engine:  engine,
		options: options,
	}
}

func (that *botService) DecideMove(ctx context.Context, board entity.Board, mark entity.Cell) (int, error) {
	if len(board.AvailableMoves()) == 0 {
		return minimax.NoMove, apperror.ErrNoAvailableMoves
	}

	if that.options.Parallel {
		move, err := that.engine.BestMoveParallel(ctx, board, mark, that.options.Workers)
		if err != nil {
			return minimax.NoMove, fmt.Errorf("failed to search best move: %w", err)
		}

		return move, nil
	}

	// board is a private copy, so the engine may mutate it freely
	return that.engine.BestMove(&board, mark), nil
}

func (that *botService) MakeTurn(ctx context.Context, game *entity.Game) error {
	log := that.logger.With("method", "MakeTurn", "gameID", game.ID)

	if !game.IsBotTurn() {
		return ErrNotBotTurn
	}

	chosenCell, err := that.DecideMove(ctx, game.Board, game.BotMark)
	if err != nil {
		return fmt.Errorf("bot failed to decide move: %w", err)
	}

	if err = game.MakeTurn(game.BotMark, chosenCell); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Debug("bot made turn", "cell", chosenCell, "status", game.Status)

	return nil
}
