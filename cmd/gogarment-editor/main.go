package main

import "github.com/philipparndt/gogarment/cmd"

func main() {
	cmd.Execute()
}
