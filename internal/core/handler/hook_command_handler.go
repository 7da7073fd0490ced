package handler

import (
	"os"
	"path/filepath"

	"cfswitch/internal/cli/output"
)

type HookCommandHandler struct{}

func ProvideHookCommandHandler() HookCommandHandler {
	return HookCommandHandler{}
}

// HandleHook prints a shell function that wraps cf-switch so the emitted
// "source ..." line is evaluated in the calling shell. The snippet varies by
// the user's login shell; anything unrecognized gets the POSIX variant.
func (h *HookCommandHandler) HandleHook() error {
	output.PrintLine("Add this to your shell config:")
	output.PrintLine("")
	for _, line := range HookSnippet(DetectShell()) {
		output.PrintLine(line)
	}
	return nil
}

// DetectShell returns the basename of $SHELL, defaulting to bash.
func DetectShell() string {
	shell := filepath.Base(os.Getenv("SHELL"))
	if shell == "." || shell == string(filepath.Separator) {
		return "bash"
	}
	return shell
}

// HookSnippet returns the integration snippet for the given shell.
func HookSnippet(shell string) []string {
	switch shell {
	case "fish":
		return []string{
			"# ~/.config/fish/config.fish",
			"function cfs",
			"    cf-switch $argv | source",
			"end",
		}
	default:
		return []string{
			"# ~/.bashrc or ~/.zshrc",
			`cfs() { eval "$(cf-switch "$@")"; }`,
		}
	}
}
