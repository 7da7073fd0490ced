package ports

// CommandRunner executes external commands and returns their combined output.
type CommandRunner interface {
	Run(name string, args ...string) ([]byte, error)
	// RunWithEnv executes a command with additional environment variables
	// merged on top of the current process environment.
	RunWithEnv(name string, env []string, args ...string) ([]byte, error)
}
