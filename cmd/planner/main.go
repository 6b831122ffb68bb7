// Command planner is a personal event scheduler.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/roach88/planner/internal/cli"
)

func main() {
	// Load .env file first, but don't error if it doesn't exist.
	_ = godotenv.Load()

	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
