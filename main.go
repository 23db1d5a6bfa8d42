package main

import "github.com/harou24/nano-banana-cli/cmd"

func main() {
	cmd.Execute()
}
