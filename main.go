package main

import (
	"embed"
	"os"

	"taskboard/internal/cli"
)

//go:embed templates static
var assets embed.FS

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := cli.Execute(version, assets); err != nil {
		os.Exit(1)
	}
}
