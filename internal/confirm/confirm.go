// Package confirm provides the yes/no gate shown before destructive actions.
package confirm

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(question string) bool
}

// Func adapts a function to Confirmer.
type Func func(question string) bool

// Confirm calls f.
func (f Func) Confirm(question string) bool { return f(question) }

// Always answers yes without asking. Used for --yes.
var Always Confirmer = Func(func(string) bool { return true })

// Never answers no without asking.
var Never Confirmer = Func(func(string) bool { return false })

// Prompt asks on Out and reads one line from In. Only "y" or "yes"
// (any case) count as yes; anything else, including EOF, is no.
type Prompt struct {
	In  io.Reader
	Out io.Writer
}

// Confirm writes the question and waits for an answer.
func (p Prompt) Confirm(question string) bool {
	fmt.Fprintf(p.Out, "%s [y/N]: ", question)

	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
