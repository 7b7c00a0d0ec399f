package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/draftops/mflgate/internal/config"
)

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the gateway configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfgFile == "" {
			return fmt.Errorf("no config file given, use --config")
		}

		cfg, err := config.Load(cfgFile)
		if err != nil {
			log.Error().Msgf("%s configuration is invalid", redCross)
			return err
		}

		logSuccess("configuration is valid (upstream: %s, listen: %s)",
			bold(cfg.Upstream.BaseURL), bold(cfg.Server.Addr))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configValidateCmd)
}
