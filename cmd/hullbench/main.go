package main

import "github.com/hullbench/hullbench/cmd/hullbench/cmd"

func main() {
	cmd.Execute()
}
