package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/draftops/mflgate/internal/cliconfig"
	"github.com/draftops/mflgate/pkg/client"
)

var (
	loginUsername string
	loginPassword string
	loginLeagueID string
	loginYear     string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with an MFLGate server",
	Long: `Logs in to the upstream MyFantasyLeague platform through a running MFLGate server.
The issued bearer token is saved locally to allow future authenticated requests.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server := viper.GetString(GatewayAddrKey)
		if server == "" {
			return fmt.Errorf("server address not configured, provide via --server or env")
		}
		u, err := url.Parse(server)
		if err != nil {
			return fmt.Errorf("parsing server URL: %w", err)
		}

		if loginPassword == "" {
			loginPassword = os.Getenv("MFLGATE_PASSWORD")
		}
		if loginPassword == "" {
			return fmt.Errorf("password not provided, use --password or MFLGATE_PASSWORD")
		}

		cli := client.New(server)

		log.Info().Msgf("Logging in via server %q...", u.Host)

		token, correlationID, err := cli.Login(cmd.Context(), client.LoginParams{
			Username: loginUsername,
			Password: loginPassword,
			LeagueID: loginLeagueID,
			Year:     loginYear,
		})
		if err != nil {
			log.Error().Msgf("%s login failed (correlation ID: %s)", redCross, correlationID)
			log.Error().Msgf("error: %v", err)
			return BeQuietError{}
		}

		cfg, err := cliconfig.Load()
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("loading config: %w", err)
			}
			cfg = &cliconfig.CLIConfig{}
		}
		if cfg.Credentials == nil {
			cfg.Credentials = make(map[string]*cliconfig.Credential)
		}
		cfg.Credentials[u.Host] = &cliconfig.Credential{
			Token: token,
		}
		if err := cliconfig.Save(cfg); err != nil {
			return fmt.Errorf("login succeeded but could not save credentials: %w", err)
		}

		logSuccess("saved credentials for %s", bold(u.Host))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "MFL username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "MFL password (or MFLGATE_PASSWORD)")
	loginCmd.Flags().StringVarP(&loginLeagueID, "league", "l", "", "League ID")
	loginCmd.Flags().StringVarP(&loginYear, "year", "y", "", "Season year")

	_ = loginCmd.MarkFlagRequired("username")
	_ = loginCmd.MarkFlagRequired("league")
	_ = loginCmd.MarkFlagRequired("year")
}
