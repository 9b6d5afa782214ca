package main

import (
	"fmt"
	"os"
)

// @title Fitlog API
// @version 1.0
// @description Workout tracker: user directory, workout log and the per-user daily view.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
