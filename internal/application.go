package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/tui"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameManager, err := newGameManager(logger, conf)
	if err != nil {
		return err
	}

	log.Info("Starting terminal UI", "bot_mark", conf.Bot.Mark, "parallel_search", conf.Search.Parallel)

	if err = tui.Run(ctx, logger, gameManager); err != nil {
		return fmt.Errorf("terminal UI error: %w", err)
	}

	log.Info("Terminal UI closed, shutting down")

	return nil
}

func newGameManager(logger *slog.Logger, conf *config.Config) (*usecase.GameManager, error) {
	gameRepo := repository.NewGameRepository()
	gameService := service.NewGameService(gameRepo)

	engine := minimax.New(logger)
	botService := service.NewBotService(logger, engine, service.BotOptions{
		Parallel: conf.Search.Parallel,
		Workers:  conf.Search.Workers,
	})

	gameManager, err := usecase.NewGameManager(logger, gameService, botService, conf.Bot.Mark)
	if err != nil {
		return nil, fmt.Errorf("could not create game manager: %w", err)
	}

	return gameManager, nil
}
