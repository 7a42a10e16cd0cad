package main

import (
	"os"

	"github.com/Bastard-Software/depsync/pkg/depsync"
)

func main() {
	os.Exit(depsync.Execute())
}
