package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks line-oriented questions on out and reads answers from in.
// The reader and writer are injected so sessions can be scripted in tests.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a Prompter reading from in and writing questions to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Ask prints the question and returns the operator's next line, trimmed of
// surrounding whitespace. io.EOF is returned once input is exhausted.
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// Confirm asks a yes/no question. Only an affirmative answer counts as yes;
// anything else, including an empty line, is no.
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.Ask(question)
	if err != nil {
		return false, err
	}
	return IsAffirmative(answer), nil
}

// IsAffirmative reports whether the answer begins with an affirmative
// token: "y", "Y", "yes", "Yes please" all count.
func IsAffirmative(answer string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y")
}
