package contact

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"rolodex/internal/app/client"
)

var GetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one contact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid contact id %q", args[0])
		}

		resp, fromCache, err := app.GetContact(cmd.Context(), id)
		if err != nil {
			return err
		}

		printContact(resp, fromCache)
		return nil
	},
}
