package main

import "score-sync/cmd"

func main() {
	cmd.Execute()
}
