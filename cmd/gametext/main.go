package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/rshade/gametext/internal/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	_ = godotenv.Load(".env")

	if err := cli.NewRootCmd(version).Execute(); err != nil {
		os.Exit(1)
	}
}
