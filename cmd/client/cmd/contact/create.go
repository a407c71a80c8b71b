package contact

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rolodex/internal/app/client"
	"rolodex/internal/domain/contact"
)

var (
	createName    string
	createAge     int
	createEmail   string
	createNotes   string
	createGroupID int64
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new contact",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		req := contact.CreateRequest{
			Name:  createName,
			Age:   createAge,
			Email: createEmail,
			Notes: createNotes,
		}
		if cmd.Flags().Changed("group") {
			req.GroupID = &createGroupID
		}

		resp, err := app.CreateContact(cmd.Context(), req)
		if err != nil {
			printFieldViolations(err)
			return err
		}

		color.Green("✓ contact created with id %d", resp.ID)
		printContact(resp, false)
		return nil
	},
}

// printFieldViolations shows per-field messages when the server rejected
// the request with a validation error.
func printFieldViolations(err error) {
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) || len(apiErr.Fields) == 0 {
		return
	}

	color.Red("the server rejected the request:")
	for field, msg := range apiErr.Fields {
		color.Red("  %s: %s", field, msg)
	}
}

func init() {
	CreateCmd.Flags().StringVar(&createName, "name", "", "full name (required)")
	CreateCmd.Flags().IntVar(&createAge, "age", 0, "age in years (required)")
	CreateCmd.Flags().StringVar(&createEmail, "email", "", "email address (required)")
	CreateCmd.Flags().StringVar(&createNotes, "notes", "", "free-form notes")
	CreateCmd.Flags().Int64Var(&createGroupID, "group", 0, "group id")
	_ = CreateCmd.MarkFlagRequired("name")
	_ = CreateCmd.MarkFlagRequired("email")
}
