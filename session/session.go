// Package session drives one full game between the local player and the
// peer: ready delay, hello exchange, concurrent turn collection, and
// resolution. Every failure is fatal to the session; nothing is retried.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"rps-duel/game"
	"rps-duel/input"
	"rps-duel/message"
	"rps-duel/report"
	"rps-duel/transport"
)

// ErrProtocolViolation reports a syntactically valid message whose variant
// is not legal in the current phase.
var ErrProtocolViolation = errors.New("session: message not legal in this phase")

// Config holds the per-session settings.
type Config struct {
	// Name is announced to the peer in the hello message.
	Name string

	// ReadyDelay is the pause before the handshake so the peer can bind its
	// socket. Cooperative only: its absence cannot break correctness, it
	// just raises the chance the first datagram is dropped pre-association.
	ReadyDelay time.Duration
}

// Session plays one game over an already-associated transport.
type Session struct {
	cfg Config
	tr  *transport.Transport
	in  *input.Source
	rep *report.Reporter
	log *slog.Logger
}

func New(cfg Config, tr *transport.Transport, in *input.Source, rep *report.Reporter, log *slog.Logger) *Session {
	return &Session{cfg: cfg, tr: tr, in: in, rep: rep, log: log}
}

// Run plays the session to completion. It returns nil on any clean
// conclusion (win, lose, tie, or withdrawal) and the first fatal error
// otherwise.
func (s *Session) Run(ctx context.Context) error {
	if s.cfg.ReadyDelay > 0 {
		s.log.Debug("waiting for peer to get ready", "delay", s.cfg.ReadyDelay)
		timer := time.NewTimer(s.cfg.ReadyDelay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}

	if err := s.tr.SendMessage(message.NewHello(s.cfg.Name)); err != nil {
		return fmt.Errorf("send hello: %w", err)
	}

	hello, err := s.tr.RecvMessage()
	if err != nil {
		return fmt.Errorf("receive hello: %w", err)
	}
	if hello.Type != message.TypeHello {
		return fmt.Errorf("%w: want hello during handshake, got %s", ErrProtocolViolation, hello.Type)
	}
	peer := hello.Name
	s.log.Info("peer joined", "peer", peer)
	s.rep.Greeting(peer)

	local, remote, err := s.collectTurns(ctx)
	if err != nil {
		return err
	}

	if local == nil {
		s.rep.LocalQuit(peer)
		return nil
	}
	if remote == nil {
		s.rep.Forfeit(peer)
		return nil
	}
	s.rep.Result(*local, *remote, peer, game.Resolve(*local, *remote))
	return nil
}
