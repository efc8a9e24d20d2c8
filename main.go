package main

import "github.com/zinc-sig/scripts/cmd"

func main() {
	cmd.Execute()
}
