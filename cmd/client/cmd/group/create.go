package group

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rolodex/internal/app/client"
	"rolodex/internal/domain/group"
)

var (
	createName        string
	createDescription string
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new group",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		req := group.CreateRequest{
			Name:        createName,
			Description: createDescription,
		}

		resp, err := app.CreateGroup(cmd.Context(), req)
		if err != nil {
			var apiErr *client.APIError
			if errors.As(err, &apiErr) && len(apiErr.Fields) > 0 {
				color.Red("the server rejected the request:")
				for field, msg := range apiErr.Fields {
					color.Red("  %s: %s", field, msg)
				}
			}
			return err
		}

		color.Green("✓ group created with id %d", resp.ID)
		return nil
	},
}

func init() {
	CreateCmd.Flags().StringVar(&createName, "name", "", "group name (required)")
	CreateCmd.Flags().StringVar(&createDescription, "description", "", "what the group is for")
	_ = CreateCmd.MarkFlagRequired("name")
}
