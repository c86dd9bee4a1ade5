package main

import (
	"fmt"
	"os"

	"github.com/fluxfw/flux/cmd"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env overrides if present. Deployments normally ship
	// /etc/flux/flux.conf instead, picked up via --config.
	_ = godotenv.Load()
}

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
