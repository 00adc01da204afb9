// Package input provides the interactive line source for the local player.
package input

import (
	"bufio"
	"io"
)

// Source yields lines from interactive input on demand. Each call advances
// the shared stream position; reaching end-of-input is terminal for the rest
// of the session.
type Source struct {
	scanner *bufio.Scanner
}

func New(r io.Reader) *Source {
	return &Source{scanner: bufio.NewScanner(r)}
}

// NextLine returns the next line without its terminator. ok is false once
// end-of-input is reached. Any underlying read error aborts the session.
func (s *Source) NextLine() (line string, ok bool, err error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), true, nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", false, err
	}
	return "", false, nil
}
