// Package prompt reads line-oriented answers from the user.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter asks questions on out and reads trimmed answers from in
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a new Prompter
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Out returns the writer questions are printed to
func (p *Prompter) Out() io.Writer {
	return p.out
}

// Ask prints label and returns the next input line with surrounding
// whitespace removed. End of input reads as an empty answer.
func (p *Prompter) Ask(label string) (string, error) {
	fmt.Fprint(p.out, label)

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// ParseChoice parses a menu answer as a non-negative decimal number. A sign
// other than a single leading "+" is rejected.
func ParseChoice(answer string) (int, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(answer, "+"), 10, 63)
	if err != nil {
		return 0, fmt.Errorf("parsing choice %q: %w", answer, err)
	}
	return int(n), nil
}

// Confirm asks a yes/no question. Only "y" or "Y" counts as yes.
func (p *Prompter) Confirm(label string) (bool, error) {
	answer, err := p.Ask(label)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y"), nil
}
