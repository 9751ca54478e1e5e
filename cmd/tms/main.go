package main

import (
	"os"

	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
