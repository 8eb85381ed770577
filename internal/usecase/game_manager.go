package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var ErrInvalidBotMark = errors.New("bot mark must be X, O or random")

type gameService interface {
	CreateGame(ctx context.Context, humanMark entity.Cell) (*entity.Game, error)
	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
	UpdateGame(ctx context.Context, game *entity.Game) error
	DeleteGame(ctx context.Context, gameID string) error
}

type botPlayer interface {
	MakeTurn(ctx context.Context, game *entity.Game) error
}

// GameManager runs human-versus-bot sessions. The human's moves come from
// the presentation layer through MakeTurn; the bot answers in the same call.
type GameManager struct {
	logger *slog.Logger

	gameService gameService
	bot         botPlayer

	// Empty means a random mark per game.
	botMark entity.Cell
}

// NewGameManager builds a manager. botMark is "X", "O" or "random".
func NewGameManager(logger *slog.Logger, gameService gameService, bot botPlayer, botMark string) (*GameManager, error) {
	mark := entity.Empty
	if botMark != "random" {
		parsed, err := entity.ParseCell(botMark)
		if err != nil || parsed == entity.Empty {
			return nil, fmt.Errorf("%w: %q", ErrInvalidBotMark, botMark)
		}

		mark = parsed
	}

	return &GameManager{
		logger:      logger.With("component", "game_manager"),
		gameService: gameService,
		bot:         bot,
		botMark:     mark,
	}, nil
}

// NewGame starts a session on an empty board. When the bot holds X it has
// already made its first move in the returned game.
func (that *GameManager) NewGame(ctx context.Context) (*entity.Game, error) {
	log := that.logger.With("method", "NewGame")

	game, err := that.gameService.CreateGame(ctx, that.humanMark())
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if game.IsBotTurn() {
		if err = that.bot.MakeTurn(ctx, game); err != nil {
			return nil, fmt.Errorf("bot failed to make first turn: %w", err)
		}

		if err = that.gameService.UpdateGame(ctx, game); err != nil {
			return nil, fmt.Errorf("failed to update game: %w", err)
		}
	}

	log.Info("game created", "gameID", game.ID, "human", game.HumanMark.String(), "bot", game.BotMark.String())

	return game, nil
}

// MakeTurn plays the human's cell and then the bot's reply. A rejected human
// move (occupied cell, wrong turn, finished game) returns the unchanged game
// together with the error.
func (that *GameManager) MakeTurn(ctx context.Context, gameID string, cell int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", gameID)

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = game.MakeTurn(game.HumanMark, cell); err != nil {
		log.Debug("human turn rejected", "cell", cell, "error", err)
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if !game.IsFinished() {
		if err = that.bot.MakeTurn(ctx, game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		log.Info("game finished", "winner", game.Winner.String(), "draw", game.IsDraw())
	}

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

// Restart drops the session and replaces it with a fresh one.
func (that *GameManager) Restart(ctx context.Context, gameID string) (*entity.Game, error) {
	that.cleanupGame(ctx, gameID)

	game, err := that.NewGame(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to restart game: %w", err)
	}

	return game, nil
}

func (that *GameManager) cleanupGame(ctx context.Context, gameID string) {
	log := that.logger.With("method", "cleanupGame", "gameID", gameID)

	if err := that.gameService.DeleteGame(ctx, gameID); err != nil {
		log.Error("failed to delete game", "error", err)
		return
	}

	log.Info("game deleted")
}

func (that *GameManager) humanMark() entity.Cell {
	if that.botMark == entity.Empty {
		human, _ := entity.GetRandomMarks()
		return human
	}

	return that.botMark.Opponent()
}
