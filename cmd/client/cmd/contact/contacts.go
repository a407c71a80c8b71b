package contact

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rolodex/internal/domain/contact"
)

var ContactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Manage contacts",
}

func printContact(c *contact.Response, fromCache bool) {
	if fromCache {
		color.Yellow("(served from local cache; server unreachable)")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "ID:\t%d\n", c.ID)
	fmt.Fprintf(w, "Name:\t%s\n", c.Name)
	fmt.Fprintf(w, "Age:\t%d\n", c.Age)
	fmt.Fprintf(w, "Email:\t%s\n", c.Email)
	if c.Notes != "" {
		fmt.Fprintf(w, "Notes:\t%s\n", c.Notes)
	}
	if c.GroupID != nil {
		fmt.Fprintf(w, "Group:\t%d\n", *c.GroupID)
	}
	fmt.Fprintf(w, "Created:\t%s\n", c.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "Updated:\t%s\n", c.UpdatedAt.Format("2006-01-02 15:04:05"))
	w.Flush()
}
