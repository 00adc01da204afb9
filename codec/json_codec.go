package codec

import (
	"encoding/json"
	"fmt"

	"rps-duel/message"
)

// JSONCodec uses Go's standard library encoding/json for serialization.
// Pros: human-readable, cross-language, easy to debug.
// Cons: larger payload than the binary codec.
type JSONCodec struct{}

func (c *JSONCodec) Encode(m *message.Message) ([]byte, error) {
	return json.Marshal(m)
}

func (c *JSONCodec) Decode(data []byte) (*message.Message, error) {
	var m message.Message
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return &m, nil
}

func (c *JSONCodec) Type() CodecType {
	return CodecTypeJSON
}
