// Package mcp parses MCP command flags and runs the expogo MCP server on stdio.
package mcp

import (
	"context"
	"flag"

	"github.com/louisbranch/expogo/internal/core/expogo"
	"github.com/louisbranch/expogo/internal/mcp/service"
	platformcmd "github.com/louisbranch/expogo/internal/platform/cmd"
)

// Config holds MCP command configuration.
type Config struct {
	DBPath     string `env:"EXPOGO_MCP_DB_PATH"`
	TrialOrder string `env:"EXPOGO_TRIAL_ORDER" envDefault:"NESW"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfigFromArgs(&cfg, fs, args, bindFlags); err != nil {
		return Config{}, err
	}
	if _, err := expogo.ParseTrialOrder(cfg.TrialOrder); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func bindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite solution ledger path (empty disables the ledger)")
	fs.StringVar(&cfg.TrialOrder, "order", cfg.TrialOrder, "default direction trial order, a permutation of NESW")
}

// Run starts the MCP server with tracing configured.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceMCP, func(ctx context.Context) error {
		return service.Run(ctx, service.Config{
			DBPath:     cfg.DBPath,
			TrialOrder: cfg.TrialOrder,
		})
	})
}
