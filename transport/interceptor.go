package transport

import (
	"log/slog"

	"rps-duel/message"
)

// SendFunc sends one message; RecvFunc receives one.
type SendFunc func(m *message.Message) error
type RecvFunc func() (*message.Message, error)

// Interceptor wraps a Transport's send and receive paths. Either hook may be
// nil to leave that direction untouched.
type Interceptor struct {
	Send func(next SendFunc) SendFunc
	Recv func(next RecvFunc) RecvFunc
}

// chainSend composes the send hooks in reverse so interceptors[0] ends up
// outermost:
//
//	chainSend(base, [A, B]) → A(B(base))
func chainSend(base SendFunc, interceptors []Interceptor) SendFunc {
	for i := len(interceptors) - 1; i >= 0; i-- {
		if interceptors[i].Send != nil {
			base = interceptors[i].Send(base)
		}
	}
	return base
}

func chainRecv(base RecvFunc, interceptors []Interceptor) RecvFunc {
	for i := len(interceptors) - 1; i >= 0; i-- {
		if interceptors[i].Recv != nil {
			base = interceptors[i].Recv(base)
		}
	}
	return base
}

// Logging reports every message crossing the transport at debug level.
func Logging(log *slog.Logger) Interceptor {
	return Interceptor{
		Send: func(next SendFunc) SendFunc {
			return func(m *message.Message) error {
				err := next(m)
				if err != nil {
					log.Debug("send failed", "message", m, "error", err)
					return err
				}
				log.Debug("sent", "message", m)
				return nil
			}
		},
		Recv: func(next RecvFunc) RecvFunc {
			return func() (*message.Message, error) {
				m, err := next()
				if err != nil {
					log.Debug("receive failed", "error", err)
					return nil, err
				}
				log.Debug("received", "message", m)
				return m, nil
			}
		},
	}
}
