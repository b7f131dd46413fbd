package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sgarch/archfolio/internal/config"
	"github.com/sgarch/archfolio/internal/drawio"
	"github.com/sgarch/archfolio/internal/gate"
	"github.com/sgarch/archfolio/internal/portfolio"
	"github.com/sgarch/archfolio/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio server",
	Long:  `Starts the HTTP server presenting the gated portfolio page with its case-study diagrams.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		if !cfg.HasCredential() {
			log.Printf("warning: no access code configured, all viewers will be locked out; set ACCESS_CODE or ACCESS_CODE_HASH")
		}

		content, err := portfolio.LoadContent(cfg.ContentFile)
		if err != nil {
			return fmt.Errorf("loading content: %w", err)
		}

		verifier := gate.NewVerifier(cfg.AccessCodeHash, cfg.AccessCode)
		g := gate.New(verifier, content.Title, content.Hint)
		renderer := drawio.NewRenderer(cfg.AssetsDir)
		p := portfolio.New(content, renderer, cfg.AssetsDir, g)

		srv := server.New(server.Config{
			Port:     cfg.Port,
			AllowAll: cfg.AllowAllOrigins,
		}, p)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
