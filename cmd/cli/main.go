package main

import "cfswitch/cmd/cli/app/cmd"

func main() {
	cmd.Execute()
}
