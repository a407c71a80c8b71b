package contact

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rolodex/internal/app/client"
	"rolodex/internal/domain/contact"
)

var (
	updateName    string
	updateAge     int
	updateEmail   string
	updateNotes   string
	updateGroupID int64
)

var UpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a contact",
	Long: `Update a contact. Only the flags you pass are changed; everything
else keeps its current value.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid contact id %q", args[0])
		}

		var req contact.UpdateRequest
		if cmd.Flags().Changed("name") {
			req.Name = &updateName
		}
		if cmd.Flags().Changed("age") {
			req.Age = &updateAge
		}
		if cmd.Flags().Changed("email") {
			req.Email = &updateEmail
		}
		if cmd.Flags().Changed("notes") {
			req.Notes = &updateNotes
		}
		if cmd.Flags().Changed("group") {
			req.GroupID = &updateGroupID
		}

		if req == (contact.UpdateRequest{}) {
			return fmt.Errorf("nothing to update: pass at least one field flag")
		}

		resp, err := app.UpdateContact(cmd.Context(), id, req)
		if err != nil {
			printFieldViolations(err)
			return err
		}

		color.Green("✓ contact %d updated", id)
		printContact(resp, false)
		return nil
	},
}

func init() {
	UpdateCmd.Flags().StringVar(&updateName, "name", "", "full name")
	UpdateCmd.Flags().IntVar(&updateAge, "age", 0, "age in years")
	UpdateCmd.Flags().StringVar(&updateEmail, "email", "", "email address")
	UpdateCmd.Flags().StringVar(&updateNotes, "notes", "", "free-form notes")
	UpdateCmd.Flags().Int64Var(&updateGroupID, "group", 0, "group id")
}
