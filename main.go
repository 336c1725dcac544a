package main

import "github.com/agentic-research/yang2proto/cmd"

func main() {
	cmd.Execute()
}
