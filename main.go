package main

import "github.com/strikelab/midipad/cmd"

func main() {
	cmd.Execute()
}
