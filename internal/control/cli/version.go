package cli

import (
	"fmt"
)

// version is the version of the program, to be set at build time via
//
//	-ldflags "-X 'github.com/mxinitup/six-minute-walk-calculator/internal/control/cli.version=...'"
var version = "development build"

// VersionCommand is the command `version`, which prints the program version.
type VersionCommand struct{}

// Execute executes the version command.
func (command *VersionCommand) Execute(args []string) error {
	fmt.Println("walktest", version)
	return nil
}
