package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/tinymachines/wopr/pkg/llm"
	"github.com/tinymachines/wopr/pkg/logger"
	"github.com/tinymachines/wopr/pkg/ollama"
	"github.com/tinymachines/wopr/pkg/server"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ff87")).
			Bold(true)

	bannerInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5c5044"))
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the WOPR relay server",
	Long:  `Accepts websocket connections on /socket and bridges them to the local model.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setupLogging()
		if err != nil {
			return err
		}
		defer logger.Close()

		fmt.Println(bannerStyle.Render("W.O.P.R."))
		fmt.Println(bannerInfoStyle.Render(fmt.Sprintf("relay %s  model %s", cfg.Server.Addr(), cfg.Ollama.Model)))

		// A cold daemon or missing model is worth a warning, not an exit:
		// the scripted exchanges work without inference.
		probe := ollama.NewClient(cfg.Ollama.URL, cfg.Ollama.Model)
		probeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		status := probe.CheckHealth(probeCtx)
		cancel()
		if !status.Available {
			logger.Warn("Ollama unavailable, falling back to scripted responses only: %v", status.Error)
		} else if ok, err := probe.HasModel(context.Background(), cfg.Ollama.Model); err == nil && !ok {
			logger.Warn("model %q not present on the daemon", cfg.Ollama.Model)
		}

		gateway, err := llm.NewGateway(llm.ClientConfig{
			BaseURL:    cfg.Ollama.URL,
			Model:      cfg.Ollama.Model,
			Timeout:    cfg.Ollama.TimeoutDuration(),
			ClientType: llm.ClientType(cfg.Ollama.Client),
		})
		if err != nil {
			return err
		}

		srv := server.New(cfg.Server.Addr(), gateway)

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.ListenAndServe()
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-sigCh:
			logger.Info("received %s, shutting down", sig)
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
