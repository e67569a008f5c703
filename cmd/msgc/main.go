package main

import (
	"fmt"
	"os"

	"github.com/roach88/msgc/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "msgc: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
