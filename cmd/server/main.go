package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/AlexZinkM/secp-wallet/internal/api"
	"github.com/AlexZinkM/secp-wallet/internal/config"
	"github.com/AlexZinkM/secp-wallet/internal/handler"
	"github.com/AlexZinkM/secp-wallet/internal/model"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := config.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	config.SetupLogger()

	if config.GetExportMode() != model.ExportModeScrypt {
		log.Warn().Str("mode", string(config.GetExportMode())).Msg("exports are not protected by the user's password")
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort("127.0.0.1", config.GetPort()),
		Handler:           api.SetupRouter(handler.NewWalletHandler()),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("wallet API listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
