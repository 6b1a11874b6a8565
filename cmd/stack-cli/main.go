package main

import (
	"simple-lists/src"
)

func main() {
	// parse args
	src.ParseCliArgs()
	// start cli
	src.CliStart(src.KIND_STACK)
}
