// Command marketcli queries the market data gateway from the terminal.
package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}
	os.Exit(Execute(os.Args[1:], os.Stdout, os.Stderr))
}
