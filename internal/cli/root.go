// Package cli wires the paykit command tree: shared flags, configuration
// loading, and client construction for the subcommands.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"paykit/client"
	"paykit/internal/config"
	"paykit/internal/logger"
)

var (
	configPath string
	publicKey  string
)

// NewRootCommand builds the paykit command tree.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paykit",
		Short: "Payment gateway toolbox",
		Long:  `paykit inspects merchant capabilities and creates payment sources and card tokens against the gateway.`,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./paykit.yaml)")
	cmd.PersistentFlags().StringVarP(&publicKey, "pkey", "k", "", "Merchant public key (overrides config)")

	cmd.AddCommand(
		newCapabilityCommand(),
		newSourceCommand(),
		newTokenCommand(),
	)

	return cmd
}

// setup loads configuration, initializes logging, and builds the gateway
// client shared by all subcommands.
func setup() (*client.Client, *config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if err := logger.Init(logger.Options{
		Level:  cfg.Logger.Level,
		Format: cfg.Logger.Format,
		Output: cfg.Logger.Output,
	}); err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	key := cfg.Gateway.PublicKey
	if publicKey != "" {
		key = publicKey
	}

	opts := []client.Option{
		client.WithLogger(logger.Get()),
		client.WithTimeout(time.Duration(cfg.Gateway.TimeoutSeconds) * time.Second),
	}
	if cfg.Gateway.BaseURL != "" {
		opts = append(opts, client.WithBaseURL(cfg.Gateway.BaseURL))
	}
	if cfg.Gateway.VaultURL != "" {
		opts = append(opts, client.WithVaultURL(cfg.Gateway.VaultURL))
	}

	c, err := client.NewClient(key, opts...)
	if err != nil {
		return nil, nil, err
	}
	return c, cfg, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
