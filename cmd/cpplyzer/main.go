package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cpplyzer",
		Short: "An error-tolerant C++ source analyzer",
	}

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newAtCmd())
	rootCmd.AddCommand(newTodosCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
