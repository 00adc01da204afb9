// Package report renders the player-facing text for a session: prompts,
// diagnostics, and the final result.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"rps-duel/game"
	"rps-duel/message"
)

var (
	winStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	loseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	// dimStyle is used for the move menu and diagnostics.
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Reporter writes session output. The writer is injected so tests can
// capture it.
type Reporter struct {
	w io.Writer
}

func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Greeting announces the opponent after the handshake.
func (r *Reporter) Greeting(peer string) {
	fmt.Fprintf(r.w, "%s enters the game!\n", peer)
}

// Prompt prints the move menu before each input line.
func (r *Reporter) Prompt() {
	fmt.Fprintln(r.w, "Enter your move and press enter.")
	fmt.Fprintln(r.w, dimStyle.Render("- r: rock"))
	fmt.Fprintln(r.w, dimStyle.Render("- p: paper"))
	fmt.Fprintln(r.w, dimStyle.Render("- s: scissor"))
	fmt.Fprintln(r.w, dimStyle.Render("- q: quit"))
}

// Invalid diagnoses an unrecognized command; the session re-prompts after.
func (r *Reporter) Invalid(line string) {
	fmt.Fprintln(r.w, dimStyle.Render(fmt.Sprintf("Command %q not understood", line)))
}

// LocalQuit reports the local player's withdrawal. No winner is computed.
func (r *Reporter) LocalQuit(peer string) {
	fmt.Fprintln(r.w, loseStyle.Render(fmt.Sprintf("You quit. %s wins by forfeit.", peer)))
}

// Forfeit reports the opponent's withdrawal.
func (r *Reporter) Forfeit(peer string) {
	fmt.Fprintln(r.w, winStyle.Render(fmt.Sprintf("%s left the game. You win by forfeit!", peer)))
}

// Result prints both moves and the outcome of a completed turn.
func (r *Reporter) Result(local, remote message.Action, peer string, outcome game.Outcome) {
	fmt.Fprintf(r.w, "You play %s.\n", local)
	fmt.Fprintf(r.w, "%s plays %s.\n", peer, remote)

	switch outcome {
	case game.OutcomeWin:
		fmt.Fprintln(r.w, winStyle.Render(fmt.Sprintf("You win! %s beats %s.", local, remote)))
	case game.OutcomeLose:
		fmt.Fprintln(r.w, loseStyle.Render(fmt.Sprintf("You lose! %s beats %s.", remote, local)))
	default:
		fmt.Fprintln(r.w, tieStyle.Render("Fair. Nobody wins."))
	}
}
