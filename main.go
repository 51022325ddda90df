package main

import "github.com/tailorcv/tailorcv/cmd"

func main() {
	cmd.Execute()
}
