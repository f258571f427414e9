package main

import (
	"github.com/Lurito/samevol/cmd"
)

func main() {
	cmd.Execute()
}
