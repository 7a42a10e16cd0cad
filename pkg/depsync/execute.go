package depsync

import "github.com/Bastard-Software/depsync/internal/cli"

// Execute runs the depsync CLI entrypoint.
func Execute() int {
	return cli.Execute()
}
