// Package protocol implements the framed payload exchanged between peers.
//
// The underlying socket is packet-oriented and may hand over fewer bytes per
// transfer than requested, so a logical message is framed explicitly and all
// reads and writes go through partial-transfer loops. The receiver reads the
// length prefix first to learn the body size, then reads exactly that many
// bytes.
//
// Frame format:
//
//	0        4
//	┌────────┬───────────────┐
//	│ length │    body ...   │
//	│ u32 LE │ length bytes  │
//	└────────┴───────────────┘
package protocol

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	// LengthSize is the size of the length prefix in bytes.
	LengthSize = 4

	// MaxFrameSize bounds the decoded body length. A connected UDP payload
	// cannot legitimately exceed it, so anything larger is garbage and must
	// not drive the allocation below.
	MaxFrameSize = 64 * 1024
)

var (
	// ErrConnectionAborted reports a send that was accepted with zero bytes.
	// A zero-length successful transfer means the peer closed, not "try again".
	ErrConnectionAborted = errors.New("protocol: socket closed mid-send")

	// ErrUnexpectedEOF reports a receive that delivered zero bytes while a
	// frame was only partially filled.
	ErrUnexpectedEOF = errors.New("protocol: socket closed mid-receive")

	// ErrFrameTooLarge reports a length prefix above MaxFrameSize.
	ErrFrameTooLarge = errors.New("protocol: frame length exceeds limit")
)

// WriteFrame sends the length prefix followed by body. The prefix is
// computed before any bytes go out and is immutable for the frame.
func WriteFrame(w io.Writer, body []byte) error {
	prefix := make([]byte, LengthSize)
	binary.LittleEndian.PutUint32(prefix, uint32(len(body)))

	if err := writeFull(w, prefix); err != nil {
		return err
	}
	return writeFull(w, body)
}

// ReadFrame reads exactly one frame and returns its body. It never
// interprets fewer or more than the prefixed length as one message.
func ReadFrame(r io.Reader) ([]byte, error) {
	prefix := make([]byte, LengthSize)
	if err := readFull(r, prefix); err != nil {
		return nil, err
	}

	length := binary.LittleEndian.Uint32(prefix)
	if length > MaxFrameSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, length)
	}

	body := make([]byte, length)
	if err := readFull(r, body); err != nil {
		return nil, err
	}
	return body, nil
}

// writeFull sends buf through repeated transfers on the unsent suffix until
// nothing remains.
func writeFull(w io.Writer, buf []byte) error {
	rest := buf
	for len(rest) > 0 {
		n, err := w.Write(rest)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrConnectionAborted
		}
		rest = rest[n:]
	}
	return nil
}

// readFull fills buf through repeated transfers on the unfilled suffix.
// A zero-byte delivery, including a reader reporting EOF, means the peer
// closed while the frame was incomplete.
func readFull(r io.Reader, buf []byte) error {
	rest := buf
	for len(rest) > 0 {
		n, err := r.Read(rest)
		if n > 0 {
			rest = rest[n:]
			continue
		}
		if err == nil || errors.Is(err, io.EOF) {
			return ErrUnexpectedEOF
		}
		return err
	}
	return nil
}
