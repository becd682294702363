// palcfg is the settings launcher for SDLPAL.
package main

import (
	"errors"
	"fmt"
	"os"

	"palcfg/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		var exit *cmd.ExitError
		if errors.As(err, &exit) {
			os.Exit(exit.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
