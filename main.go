package main

import "github.com/itsmostafa/realbooks/cmd"

func main() {
	cmd.Execute()
}
