package main

import (
	"os"

	"seller-scout/cmd/scout/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
