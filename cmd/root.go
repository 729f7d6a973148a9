package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tinymachines/wopr/pkg/config"
	"github.com/tinymachines/wopr/pkg/logger"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "wopr",
	Short: "War Operation Plan Response",
	Long:  `A relay between a terminal front end and a local language model, playing the part of the WOPR.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", ".wopr/settings.yaml", "config file (default is .wopr/settings.yaml)")

	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level")
	viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))

	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.port", 3333)

	viper.SetDefault("ollama.url", "http://localhost:11434")
	viper.SetDefault("ollama.model", "qwen3:8b")
	viper.SetDefault("ollama.client", "native")
	viper.SetDefault("ollama.timeout", 30)

	viper.SetDefault("client.server_url", "ws://localhost:3333/socket")
	viper.SetDefault("client.reconnect_attempts", 5)
	viper.SetDefault("client.reconnect_delay", 1000)

	viper.SetDefault("logging.log_file", "./.wopr/system.log")
	viper.SetDefault("logging.preserve", true)
	viper.SetDefault("logging.level", "info")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("./.wopr")
		viper.SetConfigType("yaml")
		viper.SetConfigName("settings")
	}

	viper.AutomaticEnv()
	viper.ReadInConfig()
}

// setupLogging loads the typed config and points the package logger at
// the configured file.
func setupLogging() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, cfg.Logging.Preserve); err != nil {
		return nil, err
	}
	return cfg, nil
}
