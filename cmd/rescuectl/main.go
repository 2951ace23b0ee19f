// Command rescuectl runs operational tasks against the configured database and providers.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "rescuectl",
		Short:         "Operational tooling for the Rescue and Rehab backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringSlice("env-file", []string{".env"}, "dotenv files to load before the process environment")

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(hashPasswordCmd())
	rootCmd.AddCommand(signPaymentCmd())
	rootCmd.AddCommand(testEmailCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
