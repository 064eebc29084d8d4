// Package app wires the core, content and transport layers together.
package app

import (
	"context"
	"fmt"
	stdhttp "net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/ngxtri/wordwheel-server/internal/config"
	"github.com/ngxtri/wordwheel-server/internal/core"
	"github.com/ngxtri/wordwheel-server/internal/proto"
	"github.com/ngxtri/wordwheel-server/internal/questions"
	"github.com/ngxtri/wordwheel-server/internal/store"
	"github.com/ngxtri/wordwheel-server/internal/store/sqlite"
	transporthttp "github.com/ngxtri/wordwheel-server/internal/transport/http"
	"github.com/ngxtri/wordwheel-server/internal/transport/tcp"
)

// App owns the game listener, the status server and their shared state.
type App struct {
	game            *tcp.Server
	status          *stdhttp.Server
	questions       questions.Source
	store           store.Store
	stats           *core.Stats
	bc              *core.Broadcaster
	shutdownTimeout time.Duration
	log             *zerolog.Logger
}

// New constructs the application with provided configuration.
func New(cfg config.Config, logger *zerolog.Logger) (*App, error) {
	a := &App{
		stats:           &core.Stats{},
		shutdownTimeout: cfg.ShutdownTimeout,
		log:             logger,
	}

	if cfg.QuestionDB != "" {
		st, err := sqlite.New(cfg.QuestionDB)
		if err != nil {
			return nil, fmt.Errorf("open question bank: %w", err)
		}
		a.store = st
		a.questions = questions.NewStoreSource(st)
		logger.Info().Str("question_db", cfg.QuestionDB).Msg("question bank opened")
	} else {
		a.questions = questions.NewBank()
		logger.Info().Msg("using builtin question bank")
	}

	a.bc = core.NewBroadcaster(cfg.BroadcastPacing, logger)
	registry := core.NewRegistry(proto.PlayersPerRoom, a.bc, a.stats, logger)
	a.game = tcp.NewServer(cfg.Addr, cfg.ReadTimeout, cfg.WriteTimeout, registry, a.startSession, logger)

	if cfg.StatusAddr != "" {
		a.status = transporthttp.NewServer(cfg.StatusAddr, a.stats, logger)
	}
	return a, nil
}

// startSession takes ownership of a full room and plays it out on its own
// goroutine, so multiple rooms run concurrently while the accept loop keeps
// filling the next one.
func (a *App) startSession(room *core.Room) {
	session := core.NewSession(room, a.questions, a.bc, a.stats, a.log)
	go session.Run()
}

// Run starts the listeners and blocks until context cancellation or a fatal
// server error.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 2)

	go func() {
		serverErr <- a.game.Run(ctx)
	}()

	if a.status != nil {
		go func() {
			if err := a.status.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
				serverErr <- err
				return
			}
			serverErr <- nil
		}()
	}

	select {
	case err := <-serverErr:
		a.cleanup()
		return err
	case <-ctx.Done():
		if a.status != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
			defer cancel()

			a.log.Info().Msg("shutting down status server")
			if err := a.status.Shutdown(shutdownCtx); err != nil {
				a.log.Warn().Err(err).Msg("status server shutdown failed")
			}
		}
		a.cleanup()
		return <-serverErr
	}
}

// cleanup closes the content bank and other resources.
func (a *App) cleanup() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.Warn().Err(err).Msg("failed to close question bank")
		} else {
			a.log.Info().Msg("question bank closed")
		}
	}
}
