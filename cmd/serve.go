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

	"github.com/spf13/cobra"

	"github.com/thiha-ko/linetrans/internal/bot"
	"github.com/thiha-ko/linetrans/internal/config"
	"github.com/thiha-ko/linetrans/internal/line"
	"github.com/thiha-ko/linetrans/internal/logging"
	"github.com/thiha-ko/linetrans/internal/server"
	"github.com/thiha-ko/linetrans/internal/translate"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the webhook server",
	Long:  `Starts the linetrans webhook server. LINE delivers events to POST /callback; each text message is answered with a command reply or translations.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		log := logging.New(level, cfg.LogFormat)

		provider := translate.NewRapidAPI(
			cfg.TranslateAPIKey,
			cfg.TranslateEndpoint,
			cfg.TranslateHost,
			time.Duration(cfg.TranslateTimeoutSeconds)*time.Second,
		)
		replier := line.NewClient(cfg.ChannelAccessToken, cfg.MaxReplyLength)
		router := bot.NewRouter(provider, replier, log)
		webhook := line.NewWebhook(cfg.ChannelSecret, router, log)

		srv := server.New(server.Config{Port: cfg.Port, AllowAll: cfg.AllowAllOrigins}, log)
		line.RegisterRoutes(srv.Router(), webhook)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			log.Info("shutting down server")
			srv.Shutdown(context.Background())
		}()

		log.WithField("version", Version).WithField("port", cfg.Port).Info("starting linetrans")

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}
