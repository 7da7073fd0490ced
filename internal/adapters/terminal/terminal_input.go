package terminal

import (
	"fmt"
	"os"
	"syscall"

	"golang.org/x/term"

	"cfswitch/internal/ports"
)

var _ ports.TerminalInput = (*TerminalInput)(nil)

// TerminalInput provides terminal input operations using golang.org/x/term.
type TerminalInput struct{}

func ProvideTerminalInput() *TerminalInput {
	return &TerminalInput{}
}

// ReadPassword prompts on stderr and returns the input without echoing to
// the terminal. The prompt goes to stderr so stdout stays reserved for
// shell-evaluable output.
func (t *TerminalInput) ReadPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	secret, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}
	return string(secret), nil
}

// IsTerminal returns true if stdin is connected to a terminal.
func (t *TerminalInput) IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
