package main

import (
	"fmt"
	"os"

	"upstreamcli/internal/app"
)

func main() {
	application, err := app.NewApplication()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		application.Logger.Error("Application error", "error", err)
		os.Exit(1)
	}
}
