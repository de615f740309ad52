package main

import (
	"os"

	"bestie-chat/internal/app"
)

func main() {
	os.Exit(app.Run())
}
