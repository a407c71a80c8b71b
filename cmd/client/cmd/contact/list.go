package contact

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rolodex/internal/app/client"
)

var (
	listPage    int
	listSize    int
	listSort    string
	listOrder   string
	listName    string
	listEmail   string
	listMinAge  int
	listMaxAge  int
	listGroupID int64
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List contacts",
	Long: `List one page of the contact collection.

Filters narrow the set before paging: --name matches a substring,
--email matches exactly, --min-age/--max-age bound the age.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		params := client.ListParams{
			Page:  listPage,
			Size:  listSize,
			Sort:  listSort,
			Order: listOrder,
			Name:  listName,
			Email: listEmail,
		}
		if cmd.Flags().Changed("min-age") {
			params.MinAge = &listMinAge
		}
		if cmd.Flags().Changed("max-age") {
			params.MaxAge = &listMaxAge
		}
		if cmd.Flags().Changed("group") {
			params.GroupID = &listGroupID
		}

		resp, fromCache, err := app.ListContacts(cmd.Context(), params)
		if err != nil {
			return err
		}

		if fromCache {
			color.Yellow("(served from local cache; server unreachable)")
		}

		if len(resp.Contacts) == 0 {
			fmt.Println("no contacts found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tAGE\tEMAIL\tGROUP")
		for _, c := range resp.Contacts {
			group := "-"
			if c.GroupID != nil {
				group = fmt.Sprintf("%d", *c.GroupID)
			}
			fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", c.ID, c.Name, c.Age, c.Email, group)
		}
		w.Flush()

		if !fromCache {
			fmt.Printf("\npage %d of %d (%d contacts total)\n",
				resp.Page+1, resp.TotalPages, resp.TotalItems)
		}
		return nil
	},
}

func init() {
	ListCmd.Flags().IntVar(&listPage, "page", 0, "zero-based page index")
	ListCmd.Flags().IntVar(&listSize, "size", 0, "page size (default 20, max 100)")
	ListCmd.Flags().StringVar(&listSort, "sort", "", "sort field (id, name, age, email, created_at, updated_at)")
	ListCmd.Flags().StringVar(&listOrder, "order", "asc", "sort direction (asc or desc)")
	ListCmd.Flags().StringVar(&listName, "name", "", "filter: name contains")
	ListCmd.Flags().StringVar(&listEmail, "email", "", "filter: exact email")
	ListCmd.Flags().IntVar(&listMinAge, "min-age", 0, "filter: minimum age")
	ListCmd.Flags().IntVar(&listMaxAge, "max-age", 0, "filter: maximum age")
	ListCmd.Flags().Int64Var(&listGroupID, "group", 0, "filter: group id")
}
