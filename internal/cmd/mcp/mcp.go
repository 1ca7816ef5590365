// Package mcp parses MCP command flags and serves the operator console.
package mcp

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/hatrack.space/internal/platform/cmd"
	"github.com/louisbranch/hatrack.space/internal/wardrobe/catalog"
	console "github.com/louisbranch/hatrack.space/internal/wardrobe/mcp"
	"github.com/louisbranch/hatrack.space/internal/wardrobe/session"
)

// Config holds MCP command configuration.
type Config struct {
	Kit             string `env:"HATRACK_SPACE_MCP_KIT" envDefault:"all"`
	BaseResourceURL string `env:"HATRACK_SPACE_MCP_BASE_RESOURCE_URL"`
	ConfigDir       string `env:"HATRACK_SPACE_MCP_CONFIG_DIR"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Kit, "kit", cfg.Kit, "The wearable kit to load (all, city_helmets, space_helmets)")
	fs.StringVar(&cfg.BaseResourceURL, "base-resource-url", cfg.BaseResourceURL, "Base URL for relative wearable resources")
	fs.StringVar(&cfg.ConfigDir, "config-dir", cfg.ConfigDir, "Directory of wearable data files (overrides embedded data)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run serves the wardrobe operator console over stdio.
func Run(ctx context.Context, cfg Config) error {
	kit, err := catalog.ParseKitStrict(cfg.Kit)
	if err != nil {
		return err
	}
	opts := session.Options{
		Kit:             kit,
		BaseResourceURL: cfg.BaseResourceURL,
	}
	if cfg.ConfigDir != "" {
		configDir := cfg.ConfigDir
		opts.Loader = func(kit catalog.Kit) (*catalog.Catalog, error) {
			return catalog.LoadFromDir(configDir, kit)
		}
	}
	server, err := console.New(opts)
	if err != nil {
		return err
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, server.Serve)
}
