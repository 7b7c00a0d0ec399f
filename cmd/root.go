package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/draftops/mflgate/internal/buildinfo"
	"github.com/draftops/mflgate/internal/logging"
)

// global flags
var (
	cfgFile     string
	gatewayAddr string
)

const GatewayAddrKey = "addr"

var rootCmd = &cobra.Command{
	Use:   "mflgate",
	Short: fmt.Sprintf("MFLGate session gateway (version: %s, commit: %s)", buildinfo.Version, buildinfo.CommitHash),
	Long: `MFLGate is a session-based gateway in front of the MyFantasyLeague platform.
	It logs in upstream on behalf of clients, keeps the resulting credential in an
	in-memory session store and exposes compact free-agent and player queries.`,
	Version: buildinfo.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Init(nil)
		return nil
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		var quiet BeQuietError
		if !errors.As(err, &quiet) {
			log.Error().Err(err).Msg("execution failed")
		}
		os.Exit(1)
	}
}

func init() {
	// setup pre-flag logger
	logging.InitDefault()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Gateway configuration file (YAML)")

	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	_ = viper.BindPFlag(logging.LevelKey, rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.PersistentFlags().String("log-format", "console", "Log format (console, json)")
	_ = viper.BindPFlag(logging.FormatKey, rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.PersistentFlags().Bool("no-color", false, "Disable color output")
	_ = viper.BindPFlag(logging.NoColorKey, rootCmd.PersistentFlags().Lookup("no-color"))

	rootCmd.PersistentFlags().StringVar(&gatewayAddr, "server", "", "Address of the remote MFLGate server")
	_ = viper.BindPFlag(GatewayAddrKey, rootCmd.PersistentFlags().Lookup("server"))

	viper.SetEnvPrefix("MFLGATE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))

	viper.AutomaticEnv()

	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
}
