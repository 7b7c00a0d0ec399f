package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/draftops/mflgate/internal/api"
	"github.com/draftops/mflgate/internal/api/middleware"
	"github.com/draftops/mflgate/internal/config"
	"github.com/draftops/mflgate/internal/mfl"
	"github.com/draftops/mflgate/internal/session"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MFLGate server",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if addr == "" {
			addr = cfg.Server.Addr
		}

		corsPolicy, err := middleware.NewCORSPolicy(cfg.CORS.AllowedOrigins)
		if err != nil {
			return fmt.Errorf("building CORS policy: %w", err)
		}

		upstream := mfl.New(cfg.Upstream.BaseURL, mfl.WithTimeout(cfg.Upstream.Timeout))
		sessions := session.NewStore()

		srv := api.NewServer(upstream, sessions, corsPolicy)

		server := &http.Server{
			Addr:    addr,
			Handler: srv.Routes(),
		}

		go func() {
			log.Info().Msgf("Starting server on %s...", addr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal().Err(err).Msg("Server crashed")
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info().Msg("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}

		// drain sessions before the process releases its resources, so held upstream
		// credentials and connections go away deterministically
		drained := sessions.Clear()
		upstream.CloseIdleConnections()
		log.Info().Int("sessions", drained).Msg("session store drained")

		log.Info().Msg("Server exited")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "address to listen on (overrides config)")
}
