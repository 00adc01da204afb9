package main

import "rps-duel/cmd"

func main() {
	cmd.Execute()
}
