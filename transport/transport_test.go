package transport

import (
	"errors"
	"io"
	"log/slog"
	"net"
	"testing"

	"rps-duel/codec"
	"rps-duel/message"
	"rps-duel/protocol"
)

func TestSendRecvOverPipe(t *testing.T) {
	for _, codecType := range []codec.CodecType{codec.CodecTypeJSON, codec.CodecTypeBinary} {
		left, right := net.Pipe()
		sender := New(left, codecType)
		receiver := New(right, codecType)

		sendErr := make(chan error, 1)
		go func() {
			sendErr <- sender.SendMessage(message.NewHello("alice"))
		}()

		got, err := receiver.RecvMessage()
		if err != nil {
			t.Fatalf("codec %d: RecvMessage failed: %v", codecType, err)
		}
		if err := <-sendErr; err != nil {
			t.Fatalf("codec %d: SendMessage failed: %v", codecType, err)
		}
		if got.Type != message.TypeHello || got.Name != "alice" {
			t.Errorf("codec %d: expect hello(alice), got %s", codecType, got)
		}

		left.Close()
		right.Close()
	}
}

func TestRecvSurfacesDecodeError(t *testing.T) {
	left, right := net.Pipe()
	defer left.Close()
	defer right.Close()

	go func() {
		// A well-framed body that is not a valid message.
		protocol.WriteFrame(left, []byte(`{"type":9}`))
	}()

	receiver := New(right, codec.CodecTypeJSON)
	_, err := receiver.RecvMessage()
	if !errors.Is(err, codec.ErrDecode) {
		t.Fatalf("expect ErrDecode, got: %v", err)
	}
}

func TestRecvSurfacesClosedConn(t *testing.T) {
	left, right := net.Pipe()
	left.Close()

	receiver := New(right, codec.CodecTypeJSON)
	if _, err := receiver.RecvMessage(); err == nil {
		t.Fatal("expect error from closed conn, got nil")
	}
}

func TestInterceptorOrder(t *testing.T) {
	var order []string
	tag := func(name string) Interceptor {
		return Interceptor{
			Send: func(next SendFunc) SendFunc {
				return func(m *message.Message) error {
					order = append(order, name)
					return next(m)
				}
			},
		}
	}

	left, right := net.Pipe()
	defer left.Close()
	defer right.Close()

	sender := New(left, codec.CodecTypeJSON, tag("outer"), tag("inner"))
	go func() {
		receiver := New(right, codec.CodecTypeJSON)
		receiver.RecvMessage()
	}()

	if err := sender.SendMessage(message.NewAct(message.ActionRock)); err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}

	if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
		t.Fatalf("expect [outer inner], got %v", order)
	}
}

func TestLoggingInterceptorPassesThrough(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	left, right := net.Pipe()
	defer left.Close()
	defer right.Close()

	sender := New(left, codec.CodecTypeJSON, Logging(log))
	receiver := New(right, codec.CodecTypeJSON, Logging(log))

	go func() {
		sender.SendMessage(message.NewAct(message.ActionScissor))
	}()

	got, err := receiver.RecvMessage()
	if err != nil {
		t.Fatalf("RecvMessage failed: %v", err)
	}
	if got.Type != message.TypeAct || got.Action == nil || *got.Action != message.ActionScissor {
		t.Errorf("expect act(scissor), got %s", got)
	}
}

func TestDialAssociatesPeer(t *testing.T) {
	conn, err := Dial("127.0.0.1:0", "127.0.0.1:9")
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer conn.Close()

	if conn.RemoteAddr() == nil {
		t.Fatal("expect connected socket with a remote address")
	}
}
