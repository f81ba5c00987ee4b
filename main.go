package main

import "xcstrings-drift/cmd"

func main() {
	cmd.Execute()
}
