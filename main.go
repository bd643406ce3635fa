package main

import (
	"github.com/joho/godotenv"

	"resumematch/internal/cli"
)

func main() {
	// API keys for embedding providers may live in a local .env file.
	_ = godotenv.Load()

	cli.Execute()
}
