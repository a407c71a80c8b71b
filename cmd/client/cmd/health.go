package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rolodex/internal/app/client"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check server availability",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		if err := app.CheckConnection(cmd.Context()); err != nil {
			color.Red("✗ %v", err)
			return err
		}

		color.Green("✓ server is healthy")
		return nil
	},
}
