package command_runner

import (
	"os"
	"os/exec"

	"cfswitch/internal/ports"
)

// OsCommandRunner executes external commands using os/exec. Invocations
// block until the command exits; the tool is one-shot so no timeout is
// applied.
type OsCommandRunner struct{}

func ProvideOsCommandRunner() *OsCommandRunner {
	return &OsCommandRunner{}
}

func (r *OsCommandRunner) Run(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	return cmd.CombinedOutput()
}

func (r *OsCommandRunner) RunWithEnv(name string, env []string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	cmd.Env = append(os.Environ(), env...) // Extend environment instead of replacing
	return cmd.CombinedOutput()
}

var _ ports.CommandRunner = (*OsCommandRunner)(nil)
