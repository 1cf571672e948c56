package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vzahanych/weather-answer/internal/config"
	"github.com/vzahanych/weather-answer/internal/intent"
	"github.com/vzahanych/weather-answer/internal/locale"
	"github.com/vzahanych/weather-answer/internal/output"
	"github.com/vzahanych/weather-answer/internal/service"
	"github.com/vzahanych/weather-answer/internal/timezone"
	"github.com/vzahanych/weather-answer/internal/weather"
	"github.com/vzahanych/weather-answer/pkg/logger"
	"github.com/vzahanych/weather-answer/pkg/telemetry"
)

var (
	configPath string

	log  *zap.Logger
	tele *telemetry.Telemetry
	lang *locale.Locale
)

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weather",
		Short: "Weather answers for voice assistants",
		Long: `Answers spoken weather questions ("will it rain tomorrow in Berlin?") from
a forecast provider and publishes the sentence to the console, MQTT, Kafka
or Rhasspy text to speech.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeServices(cmd.Context())
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to configuration file (default: ./config.yaml)")

	cmd.AddCommand(serverCmd())
	cmd.AddCommand(askCmd())
	cmd.AddCommand(slotsCmd())

	return cmd
}

func Execute() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			if log != nil {
				log.Info("Received shutdown signal", zap.String("signal", sig.String()))
			}
			cancel()
		case <-ctx.Done():
		}
	}()

	defer shutdownServices()

	return rootCmd().ExecuteContext(ctx)
}

func initializeServices(ctx context.Context) error {
	// 1. Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Set config
	// Having config in atomic allows changing it during runtime
	config.SetConfig(cfg)

	// 3. Initialize logger
	log, err = logger.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	tele, err = telemetry.New(ctx, cfg.Telemetry, cfg.Version)
	if err != nil {
		log.Warn("Failed to initialize telemetry", zap.Error(err))
	}

	lang, err = locale.Lookup(cfg.Locale)
	if err != nil {
		return err
	}

	return nil
}

func shutdownServices() {
	if tele != nil {
		if err := tele.Shutdown(context.Background()); err != nil && log != nil {
			log.Warn("Failed to shut down telemetry", zap.Error(err))
		}
	}
	if log != nil {
		_ = log.Sync()
	}
}

// buildService wires provider, outputs and the answer pipeline from the
// loaded config.
func buildService() (*weather.Service, intent.Decoder, error) {
	cfg := config.GetConfig()

	zone, err := resolveZone(cfg)
	if err != nil {
		return nil, nil, err
	}

	provider, err := service.New(cfg.Weather.Provider, lang, zone, log, tele)
	if err != nil {
		return nil, nil, err
	}

	decoder, err := intent.New(cfg.Parser)
	if err != nil {
		return nil, nil, err
	}

	outputs, err := output.New(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	log.Info("Answer service ready",
		zap.String("locale", lang.Name),
		zap.String("timezone", zone.String()),
		zap.String("provider", provider.Name()),
		zap.String("parser", decoder.Name()),
		zap.Strings("outputs", cfg.Outputs))

	return weather.New(cfg, lang, zone, provider, outputs, log, tele), decoder, nil
}

func resolveZone(cfg *config.Config) (*time.Location, error) {
	known := cfg.Location.HasCoordinates()

	var finder timezone.Finder
	if cfg.Timezone == timezone.Auto && known {
		f, err := timezone.DefaultFinder()
		if err != nil {
			log.Warn("Timezone finder unavailable, using local time", zap.Error(err))
		} else {
			finder = f
		}
	}

	return timezone.Resolve(cfg.Timezone, finder, cfg.Location.Lat, cfg.Location.Lon, known)
}
