package main

import (
	"github.com/deepstop/zhlcore/cmd/zhlcore"
)

func main() {
	cmd.Execute()
}
