package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiFlag  string
	userFlag string
	rootCmd  = &cobra.Command{
		Use:   "chronlinectl",
		Short: "CLI client for the chronline REST API",
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:8080", "Chronline service base URL")
	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "User ID (required)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
