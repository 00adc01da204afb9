package codec

import (
	"encoding/binary"
	"fmt"

	"rps-duel/message"
)

// BinaryCodec encodes messages in a compact tagged layout:
//
//	[1: type]
//	hello/leave: [2: name length, big-endian][name bytes]
//	act:         [1: action ordinal]
type BinaryCodec struct{}

func (c *BinaryCodec) Encode(m *message.Message) ([]byte, error) {
	switch m.Type {
	case message.TypeHello, message.TypeLeave:
		buf := make([]byte, 3+len(m.Name))
		buf[0] = byte(m.Type)
		binary.BigEndian.PutUint16(buf[1:3], uint16(len(m.Name)))
		copy(buf[3:], m.Name)
		return buf, nil
	case message.TypeAct:
		if m.Action == nil {
			return nil, fmt.Errorf("BinaryCodec: act message without action")
		}
		return []byte{byte(m.Type), byte(*m.Action)}, nil
	default:
		return nil, fmt.Errorf("BinaryCodec: unknown message type %d", byte(m.Type))
	}
}

func (c *BinaryCodec) Decode(data []byte) (*message.Message, error) {
	if len(data) < 1 {
		return nil, fmt.Errorf("%w: empty body", ErrDecode)
	}
	m := &message.Message{Type: message.Type(data[0])}

	switch m.Type {
	case message.TypeHello, message.TypeLeave:
		if len(data) < 3 {
			return nil, fmt.Errorf("%w: truncated name header", ErrDecode)
		}
		nameLen := int(binary.BigEndian.Uint16(data[1:3]))
		if len(data) != 3+nameLen {
			return nil, fmt.Errorf("%w: name length %d does not match body", ErrDecode, nameLen)
		}
		m.Name = string(data[3:])
	case message.TypeAct:
		if len(data) != 2 {
			return nil, fmt.Errorf("%w: act body must be 2 bytes, got %d", ErrDecode, len(data))
		}
		act := message.Action(data[1])
		m.Action = &act
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return m, nil
}

func (c *BinaryCodec) Type() CodecType {
	return CodecTypeBinary
}
