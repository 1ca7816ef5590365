// Package wardrobe parses wardrobe command flags and starts the service runtime.
package wardrobe

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/hatrack.space/internal/platform/cmd"
	server "github.com/louisbranch/hatrack.space/internal/wardrobe/app"
	"github.com/louisbranch/hatrack.space/internal/wardrobe/catalog"
)

// Config holds wardrobe command configuration.
type Config struct {
	Port            int    `env:"HATRACK_SPACE_WARDROBE_PORT" envDefault:"8082"`
	Addr            string `env:"HATRACK_SPACE_WARDROBE_ADDR"`
	Kit             string `env:"HATRACK_SPACE_WARDROBE_KIT" envDefault:"all"`
	BaseResourceURL string `env:"HATRACK_SPACE_WARDROBE_BASE_RESOURCE_URL"`
	ConfigDir       string `env:"HATRACK_SPACE_WARDROBE_CONFIG_DIR"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The wardrobe server port")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The wardrobe server listen address (overrides -port)")
	fs.StringVar(&cfg.Kit, "kit", cfg.Kit, "The wearable kit to load (all, city_helmets, space_helmets)")
	fs.StringVar(&cfg.BaseResourceURL, "base-resource-url", cfg.BaseResourceURL, "Base URL for relative wearable resources")
	fs.StringVar(&cfg.ConfigDir, "config-dir", cfg.ConfigDir, "Directory of wearable data files (overrides embedded data)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the wardrobe service.
//
// Operator-supplied kit names are parsed strictly so a typo fails at boot
// instead of silently falling back to the full catalog.
func Run(ctx context.Context, cfg Config) error {
	if err := catalog.ValidateData(); err != nil {
		return err
	}
	kit, err := catalog.ParseKitStrict(cfg.Kit)
	if err != nil {
		return err
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWardrobe, func(ctx context.Context) error {
		return server.Run(ctx, server.Config{
			Port:            cfg.Port,
			Addr:            cfg.Addr,
			Kit:             kit,
			BaseResourceURL: cfg.BaseResourceURL,
			ConfigDir:       cfg.ConfigDir,
		})
	})
}
