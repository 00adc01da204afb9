// Package game resolves a finished turn.
package game

import "rps-duel/message"

// Outcome is the result of one turn from the local player's point of view.
type Outcome int

const (
	OutcomeTie Outcome = iota
	OutcomeWin
	OutcomeLose
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "tie"
	}
}

// Resolve compares the local move against the remote one using the fixed
// three-way table: rock beats scissor, paper beats rock, scissor beats paper.
func Resolve(local, remote message.Action) Outcome {
	switch {
	case local == remote:
		return OutcomeTie
	case local == message.ActionRock && remote == message.ActionScissor,
		local == message.ActionPaper && remote == message.ActionRock,
		local == message.ActionScissor && remote == message.ActionPaper:
		return OutcomeWin
	default:
		return OutcomeLose
	}
}
