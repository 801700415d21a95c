package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kyuna",
	Short: "Kyuna admin panel CLI",
	Long:  "Maintenance commands for the Kyuna admin panel.",
}

// Execute runs the CLI. Registered commands are applied first.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
