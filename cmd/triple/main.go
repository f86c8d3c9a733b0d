package main

import "github.com/srh-bzd/ViRotator/cmd"

func main() {
	cmd.ExecuteCommand(cmd.NewTripleCmd("triple"))
}
