package output

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// All status and diagnostic text goes to stderr: stdout is reserved for
// shell-evaluable output ("source ..." lines) captured by the hook function.

// ColorsEnabled returns true if terminal colors should be used.
// Respects NO_COLOR environment variable (https://no-color.org/)
func ColorsEnabled() bool {
	_, noColor := os.LookupEnv("NO_COLOR")
	if noColor {
		return false
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// ANSI color codes
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
	white  = "\033[37m"
)

// Symbols for CLI output (ASCII-compatible)
const (
	SymbolSuccess = "+"
	SymbolError   = "x"
	SymbolWarning = "!"
	SymbolArrow   = "->"
)

// Bold returns text in bold (or plain if colors disabled)
func Bold(text string) string {
	if !ColorsEnabled() {
		return text
	}
	return fmt.Sprintf("%s%s%s", bold, text, reset)
}

// Success returns text styled for success messages
func Success(text string) string {
	if !ColorsEnabled() {
		return text
	}
	return fmt.Sprintf("%s%s%s", green, text, reset)
}

// Error returns text styled for error messages
func Error(text string) string {
	if !ColorsEnabled() {
		return text
	}
	return fmt.Sprintf("%s%s%s", red, text, reset)
}

// Warning returns text styled for warning messages
func Warning(text string) string {
	if !ColorsEnabled() {
		return text
	}
	return fmt.Sprintf("%s%s%s", yellow, text, reset)
}

// Info returns text styled for informational messages
func Info(text string) string {
	if !ColorsEnabled() {
		return text
	}
	return fmt.Sprintf("%s%s%s", cyan, text, reset)
}

// Header returns text styled as a section header
func Header(text string) string {
	if !ColorsEnabled() {
		return text
	}
	return fmt.Sprintf("%s%s%s%s", bold, white, text, reset)
}

// Hint returns text in dim style for secondary hint lines
func Hint(text string) string {
	if !ColorsEnabled() {
		return text
	}
	return fmt.Sprintf("%s%s%s", dim, text, reset)
}

// PrintHeader prints a bold section header
func PrintHeader(text string) {
	fmt.Fprintln(os.Stderr, Header(text))
}

// PrintSuccess prints a success message with plus symbol
func PrintSuccess(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", Success(SymbolSuccess), message)
}

// PrintError prints an error message with X symbol
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", Error(SymbolError), Error(message))
}

// PrintWarning prints a warning message with ! symbol
func PrintWarning(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", Warning(SymbolWarning), Warning(message))
}

// PrintStep prints a step being executed with arrow
func PrintStep(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", SymbolArrow, message)
}

// PrintHint prints a secondary hint line
func PrintHint(message string) {
	fmt.Fprintf(os.Stderr, "  %s\n", Hint(message))
}

// PrintLine prints a plain status line
func PrintLine(message string) {
	fmt.Fprintln(os.Stderr, message)
}

// PrintEval prints a line of shell-evaluable output to stdout. This is the
// only function in the program that writes to stdout.
func PrintEval(command string) {
	fmt.Println(command)
}
