// Package transport turns a connected socket into a reliable message
// transport: a logical message is sent or received as one unit, or the
// operation fails.
//
// One Transport is shared by the send path and the receive path for the
// whole session. The two directions are independent; the sending mutex
// serializes writers so a frame's prefix and body can never interleave with
// another frame's bytes.
package transport

import (
	"io"
	"sync"

	"rps-duel/codec"
	"rps-duel/message"
	"rps-duel/protocol"
)

// Transport binds one connected socket to one codec.
type Transport struct {
	conn    io.ReadWriter
	cdc     codec.Codec
	send    SendFunc
	recv    RecvFunc
	sending sync.Mutex // Write lock — a frame must hit the wire atomically
}

// New creates a transport over conn. Interceptors wrap the send and receive
// paths in order: the first interceptor is the outermost layer.
func New(conn io.ReadWriter, codecType codec.CodecType, interceptors ...Interceptor) *Transport {
	t := &Transport{
		conn: conn,
		cdc:  codec.GetCodec(codecType),
	}
	t.send = chainSend(t.sendFrame, interceptors)
	t.recv = chainRecv(t.recvFrame, interceptors)
	return t
}

// SendMessage encodes m, prepends the length prefix, and writes the whole
// frame. All-or-nothing: a partial send surfaces as an error.
func (t *Transport) SendMessage(m *message.Message) error {
	return t.send(m)
}

// RecvMessage reads exactly one frame and decodes its body. A frame that
// arrives intact but fails decoding is an error, never silently retried.
func (t *Transport) RecvMessage() (*message.Message, error) {
	return t.recv()
}

func (t *Transport) sendFrame(m *message.Message) error {
	body, err := t.cdc.Encode(m)
	if err != nil {
		return err
	}
	t.sending.Lock()
	defer t.sending.Unlock()
	return protocol.WriteFrame(t.conn, body)
}

func (t *Transport) recvFrame() (*message.Message, error) {
	body, err := protocol.ReadFrame(t.conn)
	if err != nil {
		return nil, err
	}
	return t.cdc.Decode(body)
}
