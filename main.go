package main

import "github.com/docmanpro/docman/cmd"

func main() {
	cmd.Execute()
}
