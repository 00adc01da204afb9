package message

import (
	"strings"
	"testing"
)

func TestActionValid(t *testing.T) {
	for _, a := range []Action{ActionRock, ActionPaper, ActionScissor} {
		if !a.Valid() {
			t.Errorf("expect %s to be valid", a)
		}
	}
	if Action(3).Valid() {
		t.Error("expect ordinal 3 to be invalid")
	}
	if Action(255).Valid() {
		t.Error("expect ordinal 255 to be invalid")
	}
}

func TestValidateVariants(t *testing.T) {
	valid := []*Message{
		NewHello("alice"),
		NewLeave("alice"),
		NewAct(ActionRock),
		NewAct(ActionScissor),
	}
	for _, m := range valid {
		if err := m.Validate(); err != nil {
			t.Errorf("expect %s to validate, got: %v", m, err)
		}
	}
}

func TestValidateRejectsMalformed(t *testing.T) {
	bad := Action(7)
	cases := []struct {
		name string
		msg  *Message
		want string
	}{
		{"hello without name", &Message{Type: TypeHello}, "requires a name"},
		{"leave without name", &Message{Type: TypeLeave}, "requires a name"},
		{"act without action", &Message{Type: TypeAct}, "requires an action"},
		{"act with bad ordinal", &Message{Type: TypeAct, Action: &bad}, "invalid action ordinal"},
		{"unknown type", &Message{Type: Type(9), Name: "alice"}, "unknown message type"},
	}
	for _, tc := range cases {
		err := tc.msg.Validate()
		if err == nil {
			t.Errorf("%s: expect error, got nil", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: expect error containing %q, got: %v", tc.name, tc.want, err)
		}
	}
}

func TestStringForms(t *testing.T) {
	if got := NewAct(ActionPaper).String(); got != "act(paper)" {
		t.Errorf("expect 'act(paper)', got %q", got)
	}
	if got := NewHello("bob").String(); got != "hello(bob)" {
		t.Errorf("expect 'hello(bob)', got %q", got)
	}
}
