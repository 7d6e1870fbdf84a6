package main

import "github.com/OpenTraceLab/protoface/cmd/protoface/cmd"

func main() {
	cmd.Execute()
}
