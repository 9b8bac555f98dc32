package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	analyticsCmd := &cobra.Command{
		Use:   "analytics",
		Short: "Show computed analytics for the user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userFlag == "" {
				return fmt.Errorf("--user required")
			}
			out, err := getAnalytics(apiFlag, userFlag)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, out)
			return nil
		},
	}
	rootCmd.AddCommand(analyticsCmd)
}
