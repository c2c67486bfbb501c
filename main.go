package main

import (
	"fmt"
	"os"

	"github.com/sintya/dinote/internal/state"
	"github.com/sintya/dinote/pkg/cmd/root"
)

func main() {
	s, err := state.NewState()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	rootCmd, err := root.NewCmdRoot(s)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
