package main

import (
	"os"

	"github.com/GriffinCanCode/explorer/cmd/explorer/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		if !commands.Reported(err) {
			commands.PrintErr("Error: %v", err)
		}
		os.Exit(1)
	}
}
