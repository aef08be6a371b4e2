// Package batch runs the expogo solver over cases read from a stream and
// writes one "Case #n: result" line per case.
package batch

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/louisbranch/expogo/internal/core/expogo"
	"github.com/louisbranch/expogo/internal/ledger"
	platformcmd "github.com/louisbranch/expogo/internal/platform/cmd"
	"github.com/louisbranch/expogo/internal/storage"
	"github.com/louisbranch/expogo/internal/storage/sqlite"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/expogo/internal/tools/batch"

// Config holds batch run configuration.
type Config struct {
	TrialOrder string `env:"EXPOGO_TRIAL_ORDER" envDefault:"NESW"`
	Verify     bool   `env:"EXPOGO_VERIFY"      envDefault:"true"`
	DBPath     string `env:"EXPOGO_DB_PATH"`
}

// ParseConfig loads environment defaults and then parses flags into a Config.
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
	fs.StringVar(&cfg.TrialOrder, "order", cfg.TrialOrder, "direction trial order, a permutation of NESW")
	fs.BoolVar(&cfg.Verify, "verify", cfg.Verify, "simulate each path and fail if it misses its target")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite solution ledger path (empty disables the ledger)")
}

// Run reads cases from in and writes results to out. Lines for cases
// solved before an error are still written.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) (err error) {
	if in == nil {
		return fmt.Errorf("input is required")
	}
	if out == nil {
		return fmt.Errorf("output is required")
	}
	order, err := expogo.ParseTrialOrder(cfg.TrialOrder)
	if err != nil {
		return err
	}

	var store storage.SolutionStore
	if path := strings.TrimSpace(cfg.DBPath); path != "" {
		sqliteStore, err := sqlite.Open(path)
		if err != nil {
			return fmt.Errorf("open ledger: %w", err)
		}
		defer func() {
			if closeErr := sqliteStore.Close(); closeErr != nil {
				log.Printf("close ledger: %v", closeErr)
			}
		}()
		store = sqliteStore
	}
	service := ledger.NewService(expogo.NewSolver(order), store)

	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "expogo.run", trace.WithAttributes(
		attribute.String("expogo.trial_order", order.String()),
		attribute.Bool("expogo.verify", cfg.Verify),
		attribute.Bool("expogo.ledger", store != nil),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	w := bufio.NewWriter(out)
	defer func() {
		if flushErr := w.Flush(); flushErr != nil && err == nil {
			err = fmt.Errorf("write output: %w", flushErr)
		}
	}()

	reader := NewCaseReader(in)
	count, err := reader.Count()
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.Int("expogo.cases", count))

	for n := 1; n <= count; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		target, err := reader.Next()
		if err != nil {
			return fmt.Errorf("case %d: %w", n, err)
		}
		result, err := solveCase(ctx, tracer, service, n, target, cfg.Verify)
		if err != nil {
			return fmt.Errorf("case %d: %w", n, err)
		}
		if _, err := fmt.Fprintf(w, "Case #%d: %s\n", n, result); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}

func solveCase(ctx context.Context, tracer trace.Tracer, service *ledger.Service, n int, target expogo.Target, verify bool) (expogo.Result, error) {
	ctx, span := tracer.Start(ctx, "expogo.case", trace.WithAttributes(
		attribute.Int("expogo.case", n),
		attribute.Int64("expogo.x", target.X),
		attribute.Int64("expogo.y", target.Y),
	))
	defer span.End()

	result, err := service.Solve(ctx, target)
	if err == nil && verify && result.Possible {
		err = expogo.Verify(target, result.Path)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return expogo.Result{}, err
	}
	span.SetAttributes(
		attribute.Bool("expogo.possible", result.Possible),
		attribute.Int("expogo.jumps", len(result.Path)),
	)
	return result, nil
}
