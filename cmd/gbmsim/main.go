package main

import (
	"github.com/riskforge/gbmsim/pkg/cmd"
)

func main() {
	cmd.Execute()
}
