package main

import (
	"os"

	"github.com/kilianp07/tripsched/cmd"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
	}
	os.Exit(cmd.ExitCode(err))
}
