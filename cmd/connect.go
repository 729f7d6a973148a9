package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tinymachines/wopr/pkg/logger"
	"github.com/tinymachines/wopr/pkg/terminal"
)

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Open the WOPR terminal",
	Long:  `Connects to a running relay and opens the full-screen terminal front end.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setupLogging()
		if err != nil {
			return err
		}
		defer logger.Close()

		socket := terminal.NewSocketWithRetry(
			cfg.Client.ServerURL,
			cfg.Client.ReconnectAttempts,
			cfg.Client.ReconnectDelayDuration(),
		)

		app := terminal.NewApp(socket)
		return app.Run()
	},
}

func init() {
	rootCmd.AddCommand(connectCmd)
}
