package session

import (
	"context"
	"fmt"
	"strings"

	"rps-duel/message"
)

// turnResult is what either task resolves to: an action, a withdrawal
// (nil action), or a failure.
type turnResult struct {
	action *message.Action
	err    error
}

// collectTurns runs the local task and the remote task concurrently and
// rendezvous on both results. Each task delivers into its own buffered
// channel, so a task that resolves first parks its value there untouched
// while the other keeps running; neither is re-polled or restarted.
//
// The first failure cancels the sibling's context and becomes the overall
// result. No completion order is assumed: both "local decided first" and
// "remote message arrived first" flow through the same select loop.
func (s *Session) collectTurns(ctx context.Context) (local, remote *message.Action, err error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	localCh := make(chan turnResult, 1)
	remoteCh := make(chan turnResult, 1)

	go func() {
		act, err := s.localTurn(ctx)
		localCh <- turnResult{action: act, err: err}
	}()
	go func() {
		act, err := s.remoteTurn()
		remoteCh <- turnResult{action: act, err: err}
	}()

	for localCh != nil || remoteCh != nil {
		select {
		case r := <-localCh:
			if r.err != nil {
				return nil, nil, fmt.Errorf("local turn: %w", r.err)
			}
			local = r.action
			localCh = nil
		case r := <-remoteCh:
			if r.err != nil {
				return nil, nil, fmt.Errorf("remote turn: %w", r.err)
			}
			remote = r.action
			remoteCh = nil
		}
	}
	return local, remote, nil
}

// localTurn prompts until the player enters a recognized command. A move is
// sent to the peer before the task resolves; quit and end-of-input send a
// leave notice instead, so the peer's receive task can resolve too. Every
// session therefore emits exactly one turn-phase message.
func (s *Session) localTurn(ctx context.Context) (*message.Action, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s.rep.Prompt()

		line, ok, err := s.in.NextLine()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, s.withdraw()
		}

		var act message.Action
		switch strings.TrimSpace(line) {
		case "r":
			act = message.ActionRock
		case "p":
			act = message.ActionPaper
		case "s":
			act = message.ActionScissor
		case "q":
			return nil, s.withdraw()
		default:
			s.rep.Invalid(line)
			continue
		}

		if err := s.tr.SendMessage(message.NewAct(act)); err != nil {
			return nil, err
		}
		return &act, nil
	}
}

// withdraw notifies the peer that the local player is leaving. On success
// the caller resolves to a nil action.
func (s *Session) withdraw() error {
	s.log.Debug("withdrawing")
	return s.tr.SendMessage(message.NewLeave(s.cfg.Name))
}

// remoteTurn receives exactly one message from the peer. An act carries the
// opponent's move; a leave resolves to opponent withdrawal. Anything else is
// a fatal protocol violation, never retried.
func (s *Session) remoteTurn() (*message.Action, error) {
	msg, err := s.tr.RecvMessage()
	if err != nil {
		return nil, err
	}

	switch msg.Type {
	case message.TypeAct:
		return msg.Action, nil
	case message.TypeLeave:
		s.log.Info("peer withdrew", "peer", msg.Name)
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: want act or leave during turn collection, got %s", ErrProtocolViolation, msg.Type)
	}
}
