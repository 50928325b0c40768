// Package site parses site service flags and launches the service.
package site

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/mjkconsultancy/site/internal/content"
	"github.com/mjkconsultancy/site/internal/formrelay"
	entrypoint "github.com/mjkconsultancy/site/internal/platform/cmd"
	"github.com/mjkconsultancy/site/internal/platform/logging"
	sitesvc "github.com/mjkconsultancy/site/internal/services/site"
)

// Config holds site command configuration.
type Config struct {
	HTTPAddr    string `env:"MJK_SITE_HTTP_ADDR" envDefault:"localhost:8080"`
	ContentFile string `env:"MJK_SITE_CONTENT_FILE"`
	// RelayEndpoint defaults to the hosted endpoint for the contact email.
	RelayEndpoint string        `env:"MJK_SITE_RELAY_ENDPOINT"`
	RelayTimeout  time.Duration `env:"MJK_SITE_RELAY_TIMEOUT" envDefault:"10s"`
	ViewTTL       time.Duration `env:"MJK_SITE_VIEW_TTL" envDefault:"30m"`
	WhatsAppURL   string        `env:"MJK_SITE_WHATSAPP_URL"`
	TikTokURL     string        `env:"MJK_SITE_TIKTOK_URL"`

	Logging logging.Config
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.ContentFile, "content-file", cfg.ContentFile, "YAML file replacing the embedded site content")
	fs.StringVar(&cfg.RelayEndpoint, "relay-endpoint", cfg.RelayEndpoint, "Contact form relay URL")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the brochure site.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceSite, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		server, err := newServer(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer server.Close()

		logger.Info("site listening", zap.String("addr", server.Addr()))
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve site: %w", err)
		}
		return nil
	})
}

func newServer(ctx context.Context, cfg Config, logger *zap.Logger) (*sitesvc.Server, error) {
	registry, err := loadContent(cfg)
	if err != nil {
		return nil, err
	}
	relay, err := newRelay(cfg, registry)
	if err != nil {
		return nil, err
	}
	server, err := sitesvc.NewServer(ctx, sitesvc.Config{
		HTTPAddr:       cfg.HTTPAddr,
		Content:        registry,
		Relay:          relay,
		ViewTTL:        cfg.ViewTTL,
		Logger:         logger,
		TracerProvider: otel.GetTracerProvider(),
	})
	if err != nil {
		return nil, fmt.Errorf("init site server: %w", err)
	}
	return server, nil
}

func loadContent(cfg Config) (*content.Registry, error) {
	registry, err := content.Load(cfg.ContentFile)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	return registry.WithOverrides(content.Overrides{
		WhatsAppURL: cfg.WhatsAppURL,
		TikTokURL:   cfg.TikTokURL,
	}), nil
}

func newRelay(cfg Config, registry *content.Registry) (*formrelay.Client, error) {
	endpoint := strings.TrimSpace(cfg.RelayEndpoint)
	if endpoint == "" {
		endpoint = formrelay.DefaultEndpoint(registry.Contact().Email)
	}
	relay, err := formrelay.New(
		formrelay.Config{Endpoint: endpoint, Timeout: cfg.RelayTimeout},
		formrelay.WithTracerProvider(otel.GetTracerProvider()),
	)
	if err != nil {
		return nil, fmt.Errorf("init form relay: %w", err)
	}
	return relay, nil
}
