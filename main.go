package main

import (
	"github.com/opsgrid/checks/cmd"
)

func main() {
	cmd.Execute()
}
