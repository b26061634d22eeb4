package main

import (
	"os"

	"tftmenu/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
