package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	contactCmd "rolodex/cmd/client/cmd/contact"
	groupCmd "rolodex/cmd/client/cmd/group"
	"rolodex/internal/app/client"
	"rolodex/internal/app/client/config"
	serverconfig "rolodex/internal/app/server/config"
	"rolodex/internal/utils/logger"
)

var (
	cfg       *config.Config
	log       *slog.Logger
	app       *client.App
	debug     bool
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "rolodex",
	Short: "Rolodex - contact directory client",
	Long: `Rolodex is the command-line client for the contact directory service.

Contacts fetched from the server are kept in a local cache, so reads
keep working while the server is unreachable. Writes always go to the
server.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	defer func() {
		if app != nil {
			_ = app.Close()
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg = config.MustLoad()

	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}

	env := cfg.Env
	if debug {
		env = serverconfig.EnvLocal
	}
	log = logger.New(env)

	var err error
	app, err = client.NewApp(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize client: %w", err)
	}

	cmd.SetContext(client.NewContext(cmd.Context(), app))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "server address (host:port), overrides SERVER_ADDRESS")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(healthCmd)

	rootCmd.AddCommand(contactCmd.ContactCmd)
	contactCmd.ContactCmd.AddCommand(contactCmd.CreateCmd)
	contactCmd.ContactCmd.AddCommand(contactCmd.GetCmd)
	contactCmd.ContactCmd.AddCommand(contactCmd.ListCmd)
	contactCmd.ContactCmd.AddCommand(contactCmd.UpdateCmd)
	contactCmd.ContactCmd.AddCommand(contactCmd.DeleteCmd)

	rootCmd.AddCommand(groupCmd.GroupCmd)
	groupCmd.GroupCmd.AddCommand(groupCmd.ListCmd)
	groupCmd.GroupCmd.AddCommand(groupCmd.CreateCmd)
}
