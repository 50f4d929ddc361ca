// Tentacle - dev-stack dashboard for Docker containers and project tasks.
// Every arm of your stack, one screen.
package main

import (
	"os"

	"github.com/bsisduck/tentacle/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
