package main

import (
	"log"

	"github.com/gscript-labs/ts2gs/cmd"
)

func main() {
	log.Default().SetFlags(0)
	cmd.Execute()
}
