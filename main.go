package main

import "moviebook-cli/cmd"

func main() {
	cmd.Execute()
}
