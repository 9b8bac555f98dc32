package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	entriesCmd := &cobra.Command{Use: "entries", Short: "Screen-time entry operations"}

	// add: a single entry from flags, or a batch from a JSON file / stdin
	var date, app, category, file string
	var minutes float64
	var pickups int
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add screen-time entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userFlag == "" {
				return fmt.Errorf("--user required")
			}

			var payload interface{}
			if file != "" {
				data, err := readEntriesFile(file)
				if err != nil {
					return err
				}
				payload = json.RawMessage(data)
			} else {
				if date == "" || app == "" || minutes <= 0 {
					return fmt.Errorf("--date, --app and --minutes required (or use --file)")
				}
				entry := map[string]interface{}{
					"date":         date,
					"app":          app,
					"time_minutes": minutes,
				}
				if category != "" {
					entry["category"] = category
				}
				if cmd.Flags().Changed("pickups") {
					entry["pickups"] = pickups
				}
				payload = map[string]interface{}{"entries": []interface{}{entry}}
			}

			out, err := postEntries(apiFlag, userFlag, payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, out)
			return nil
		},
	}
	addCmd.Flags().StringVarP(&date, "date", "d", "", "Entry date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&app, "app", "", "App name")
	addCmd.Flags().Float64VarP(&minutes, "minutes", "m", 0, "Screen time in minutes")
	addCmd.Flags().StringVarP(&category, "category", "c", "", "Category override")
	addCmd.Flags().IntVarP(&pickups, "pickups", "p", 0, "Phone pickups")
	addCmd.Flags().StringVarP(&file, "file", "f", "", "JSON file with an entries batch (- for stdin)")
	entriesCmd.AddCommand(addCmd)

	// clear
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all entries for the user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userFlag == "" {
				return fmt.Errorf("--user required")
			}
			out, err := deleteEntries(apiFlag, userFlag)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, out)
			return nil
		},
	}
	entriesCmd.AddCommand(clearCmd)

	rootCmd.AddCommand(entriesCmd)
}

func readEntriesFile(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
