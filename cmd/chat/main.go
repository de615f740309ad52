package main

import "bestie-chat/internal/cli/cmd"

func main() {
	cmd.Execute()
}
