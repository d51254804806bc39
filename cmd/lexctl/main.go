package main

import (
	"os"

	"lexaid/backend/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
