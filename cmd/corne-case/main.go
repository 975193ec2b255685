// Command corne-case generates the printable parts of a split Corne
// keyboard case.
package main

import (
	"os"

	"github.com/bendavis78/corne-case/cmd/corne-case/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
