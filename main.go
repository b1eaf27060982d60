package main

import (
	"github.com/luciernaga/luciernaga/cmd"
)

func main() {
	cmd.Execute()
}
