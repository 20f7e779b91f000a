// main is the command-line entrypoint for the modelprof CLI.
package main

import (
	"github.com/modelprof/modelprof/cmd"
	"github.com/modelprof/modelprof/internal/contract"
)

func main() {
	err := cmd.Execute()
	cmd.CloseStore()
	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
