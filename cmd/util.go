package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/draftops/mflgate/internal/cliconfig"
	"github.com/draftops/mflgate/pkg/client"
)

var (
	bold     = color.New(color.Bold).SprintFunc()
	redCross = color.New(color.FgRed).Sprint("✗")
	greenOK  = color.New(color.FgGreen).Sprint("✓")
)

// BeQuietError signals that the error was already reported to the user and only the
// exit code should change.
type BeQuietError struct{}

func (BeQuietError) Error() string {
	return "command failed"
}

func logSuccess(format string, args ...any) {
	log.Info().Msgf(greenOK+" "+format, args...)
}

func getClient() (*client.Client, error) {
	// we need the user to provide some server address first
	server := viper.GetString(GatewayAddrKey)
	if server == "" {
		return nil, fmt.Errorf("server address not configured, provide via --server or env")
	}

	cfg, err := cliconfig.Load()
	if err != nil {
		return nil, err
	}

	var gatewayToken string

	credential, err := cfg.GetCredential(server)
	if err != nil {
		if !errors.Is(err, cliconfig.ErrCredentialNotFound) {
			return nil, err
		}
	} else {
		gatewayToken = credential.Token
	}

	return client.New(server, client.WithAuthToken(gatewayToken)), nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
