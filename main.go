package main

import (
	"log"

	"github.com/rubywriter/rubywriter/cmd"
)

func main() {
	log.Default().SetFlags(0)
	cmd.Execute()
}
