package main

import "github.com/raidscope/raidscope/internal/cmd"

func main() {
	cmd.Execute()
}
