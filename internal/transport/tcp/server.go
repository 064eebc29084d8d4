// Package tcp hosts the game listener: it accepts player connections one at
// a time, feeds them to the lobby registry, and hands full rooms to the
// session starter.
package tcp

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/rs/zerolog"

	"github.com/ngxtri/wordwheel-server/internal/core"
)

// SessionStarter receives ownership of a full room. It must return quickly;
// the game itself runs on its own goroutine.
type SessionStarter func(*core.Room)

// Server owns the listening socket and the single-threaded accept loop.
// Rooms fill sequentially; concurrency begins only at the session handoff.
type Server struct {
	addr         string
	readTimeout  time.Duration
	writeTimeout time.Duration
	registry     *core.Registry
	start        SessionStarter
	log          *zerolog.Logger
}

// NewServer builds the game listener.
func NewServer(addr string, readTimeout, writeTimeout time.Duration, registry *core.Registry, start SessionStarter, logger *zerolog.Logger) *Server {
	return &Server{
		addr:         addr,
		readTimeout:  readTimeout,
		writeTimeout: writeTimeout,
		registry:     registry,
		start:        start,
		log:          logger,
	}
}

// Run listens and accepts until ctx is cancelled. A bind failure is returned
// immediately; accept errors after a successful bind are logged and the loop
// continues.
func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return err
	}
	s.log.Info().Str("addr", s.addr).Msg("game listener started")

	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	for {
		nc, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.log.Warn().Err(err).Msg("accept failed")
			continue
		}
		s.log.Info().Str("remote", nc.RemoteAddr().String()).Msg("connection accepted")

		conn := NewConn(nc, s.readTimeout, s.writeTimeout)
		if room := s.registry.Admit(conn); room != nil {
			s.start(room)
		}
	}
}
