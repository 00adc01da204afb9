// Package codec serializes and deserializes game messages.
//
// Both peers must use the same codec; the choice is configuration, not
// negotiated on the wire. Every codec validates decoded messages against the
// closed variant set, so malformed bytes fail with an error wrapping
// ErrDecode regardless of encoding.
package codec

import (
	"errors"
	"fmt"

	"rps-duel/message"
)

type CodecType byte

const (
	CodecTypeJSON   CodecType = 0
	CodecTypeBinary CodecType = 1
)

// ErrDecode marks bytes that do not parse into a valid message.
// Decode failures are fatal to the session and never retried.
var ErrDecode = errors.New("codec: malformed message")

type Codec interface {
	Encode(m *message.Message) ([]byte, error)
	Decode(data []byte) (*message.Message, error)
	Type() CodecType
}

func GetCodec(codecType CodecType) Codec {
	if codecType == CodecTypeBinary {
		return &BinaryCodec{}
	}
	return &JSONCodec{}
}

// ParseCodecType maps a configuration string to a codec type.
func ParseCodecType(name string) (CodecType, error) {
	switch name {
	case "json":
		return CodecTypeJSON, nil
	case "binary":
		return CodecTypeBinary, nil
	default:
		return 0, fmt.Errorf("unknown codec %q (want json or binary)", name)
	}
}
