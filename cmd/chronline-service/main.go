package main

import (
	"os"

	"github.com/chronline/chronline/chronlineservice"
)

func main() {
	if err := chronlineservice.Run(); err != nil {
		os.Exit(1)
	}
}
