package main

import (
	"github.com/perchworks/restock/cmd/restock/commands"
)

func main() {
	commands.Execute()
}
