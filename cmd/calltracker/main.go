package main

import (
	"fmt"
	"os"

	"github.com/jordanlanch/calltracker/config"
	"github.com/jordanlanch/calltracker/pkg/logger"
	"github.com/jordanlanch/calltracker/pkg/secrets"
	"github.com/spf13/cobra"
)

var (
	cfg *config.Config
	log logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "calltracker",
	Short: "Call tracking for marketing campaigns",
	Long: `calltracker buys tracking numbers, forwards the calls they receive
and reports which lead sources produced them.

Configuration is read from the environment (DATABASE_URL, TWILIO_*, REDIS_URL...).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		log = logger.New(cfg.LogLevel, cfg.LogFormat)

		if cfg.SecretsBackend == "env" {
			return nil
		}
		m, err := secrets.NewManager(secrets.Config{
			Backend:       cfg.SecretsBackend,
			AWSRegion:     cfg.SecretsAWSRegion,
			Prefix:        cfg.SecretsPrefix,
			CacheDuration: cfg.SecretsCacheDuration,
		}, log)
		if err != nil {
			return err
		}
		return secrets.ApplyToConfig(cmd.Context(), m, cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, seedCmd, checkAppCmd, hashPasswordCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
