// Package message defines the game message exchanged between the two peers.
//
// Message is the "envelope" for everything that crosses the wire. It gets
// serialized by the codec layer and wrapped in a protocol frame for
// transmission over the UDP socket.
package message

import "fmt"

// Action is the move chosen by a player. The ordinal is the wire value
// agreed by both peers; no other values are valid.
type Action byte

const (
	ActionRock    Action = 0
	ActionPaper   Action = 1
	ActionScissor Action = 2
)

// Valid reports whether a is one of the three defined moves.
func (a Action) Valid() bool {
	return a <= ActionScissor
}

func (a Action) String() string {
	switch a {
	case ActionRock:
		return "rock"
	case ActionPaper:
		return "paper"
	case ActionScissor:
		return "scissor"
	default:
		return fmt.Sprintf("action(%d)", byte(a))
	}
}

// Type distinguishes the three message variants.
type Type byte

const (
	TypeHello Type = 0 // Announces identity, exactly once per session before any act
	TypeLeave Type = 1 // Declares voluntary withdrawal
	TypeAct   Type = 2 // Carries the player's chosen move
)

func (t Type) String() string {
	switch t {
	case TypeHello:
		return "hello"
	case TypeLeave:
		return "leave"
	case TypeAct:
		return "act"
	default:
		return fmt.Sprintf("type(%d)", byte(t))
	}
}

// Message carries one protocol message.
//
//   - Hello and Leave set Name and leave Action nil.
//   - Act sets Action and leaves Name empty.
//
// Messages are immutable once constructed; nothing holds on to one beyond
// a single send or receive.
type Message struct {
	Type   Type    `json:"type"`
	Name   string  `json:"name,omitempty"`
	Action *Action `json:"action,omitempty"`
}

// NewHello builds the identity announcement sent during the handshake.
func NewHello(name string) *Message {
	return &Message{Type: TypeHello, Name: name}
}

// NewLeave builds the withdrawal notice sent when the local player quits.
func NewLeave(name string) *Message {
	return &Message{Type: TypeLeave, Name: name}
}

// NewAct builds the turn message carrying the player's move.
func NewAct(act Action) *Message {
	return &Message{Type: TypeAct, Action: &act}
}

// Validate checks that m is a well-formed value of the closed variant set.
// Codecs call it after decoding so that unknown type tags, out-of-range
// action ordinals, and missing required fields fail regardless of encoding.
func (m *Message) Validate() error {
	switch m.Type {
	case TypeHello, TypeLeave:
		if m.Name == "" {
			return fmt.Errorf("%s message requires a name", m.Type)
		}
	case TypeAct:
		if m.Action == nil {
			return fmt.Errorf("act message requires an action")
		}
		if !m.Action.Valid() {
			return fmt.Errorf("invalid action ordinal %d", byte(*m.Action))
		}
	default:
		return fmt.Errorf("unknown message type %d", byte(m.Type))
	}
	return nil
}

func (m *Message) String() string {
	switch m.Type {
	case TypeAct:
		if m.Action != nil {
			return fmt.Sprintf("act(%s)", *m.Action)
		}
		return "act(?)"
	default:
		return fmt.Sprintf("%s(%s)", m.Type, m.Name)
	}
}
