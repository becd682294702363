package cmd

import "fmt"

// ExitLaunch is the exit status telling the wrapper script to start the game.
const ExitLaunch = 11

// ExitError asks main to exit with Code. The command has already reported
// whatever there was to say, so main prints nothing.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

func launchExit() error {
	return &ExitError{Code: ExitLaunch}
}
