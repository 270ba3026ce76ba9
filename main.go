package main

import (
	"os"

	"github.com/chng-cli/chng/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
