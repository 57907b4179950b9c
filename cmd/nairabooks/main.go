package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/nairabooks/nairabooks/internal/commands"
	"github.com/nairabooks/nairabooks/internal/logging"
)

func main() {
	// Optional .env for local overrides; absence is not an error.
	_ = godotenv.Load()

	logging.Setup(os.Getenv("NAIRABOOKS_LOG_LEVEL"), os.Getenv("NAIRABOOKS_LOG_FORMAT"))

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
