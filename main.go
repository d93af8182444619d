package main

import (
	"os"

	"github.com/thomasmccollum2508/studylo-sub000/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
