package suite

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
)

const maxWaitDuration = 30 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Storage repository.GameRepository
}

// New returns a context bound to the test and a suite with a fresh in-memory
// game store. Set TEST_VERBOSE to see the logs.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	var out io.Writer = io.Discard
	if os.Getenv("TEST_VERBOSE") != "" {
		out = os.Stdout
	}

	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Storage: repository.NewGameRepository(),
	}
}
