package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/quantprep/quantprep/cmd"
)

func main() {
	// Optional .env for local overrides; absence is fine.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
