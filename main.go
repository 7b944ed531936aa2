package main

import (
	"github.com/franklin-ross/repo/cmd"
	_ "github.com/franklin-ross/repo/cmd/commands"
)

func main() {
	cmd.Execute()
}
