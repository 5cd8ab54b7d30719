package main

import (
	"os"

	"ofrendas/internal/commands"
)

func main() {
	if err := commands.NewRootCommand(commands.AbrirDesdeEntorno).Execute(); err != nil {
		os.Exit(1)
	}
}
