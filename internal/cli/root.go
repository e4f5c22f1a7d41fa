// Package cli wires the command-line surface to the distance pipeline.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/meridian/internal/config"
	"github.com/UnknownOlympus/meridian/internal/metrics"
	"github.com/UnknownOlympus/meridian/internal/report"
	"github.com/UnknownOlympus/meridian/internal/repository"
	"github.com/UnknownOlympus/meridian/internal/service"
	"github.com/UnknownOlympus/meridian/internal/source"
	"github.com/spf13/cobra"
)

// connectFunc opens the location repository and returns a function releasing it.
type connectFunc func(ctx context.Context) (repository.Interface, func(), error)

type options struct {
	format  string
	source  string
	dataset string
	seed    uint64
	limit   int
}

type app struct {
	cfg     *config.Config
	log     *slog.Logger
	metrics *metrics.Metrics
	connect connectFunc
	opts    options
}

// NewRootCommand builds the meridian command. Flags default to the values in cfg.
func NewRootCommand(cfg *config.Config, log *slog.Logger, appMetrics *metrics.Metrics) *cobra.Command {
	a := &app{
		cfg:     cfg,
		log:     log,
		metrics: appMetrics,
	}
	a.connect = a.connectPostgres

	return a.command()
}

func (a *app) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meridian [count]",
		Short: "Report great-circle distances between every pair of locations",
		Long: `Computes the great-circle distance between every pair of locations on a
spherical Earth, prints the pairs from shortest to longest, the average
distance and the pair closest to that average.

Without arguments the fixed dataset is used. With a count of at least 2,
that many random locations are generated uniformly over the globe.`,
		Example: `  meridian
  meridian 12
  meridian --format plain --seed 7 25`,
		Args:          maxOneCount,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.run,
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", source.ErrInvalidArgument, err)
	})

	flags := cmd.Flags()
	flags.StringVar(&a.opts.format, "format", a.cfg.Format, "report format: table, plain")
	flags.StringVar(&a.opts.source, "source", a.cfg.Source, "fixed dataset backend: csv, postgres")
	flags.StringVar(&a.opts.dataset, "dataset", a.cfg.Dataset, "path to the CSV dataset")
	flags.Uint64Var(&a.opts.seed, "seed", a.cfg.Seed, "seed for random locations, 0 picks a fresh one")
	flags.IntVar(&a.opts.limit, "limit", a.cfg.Database.Limit, "maximum number of locations read from postgres")

	return cmd
}

func maxOneCount(_ *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: too many arguments provided, please provide 0 or 1 argument", source.ErrInvalidArgument)
	}
	return nil
}

// sourceConfig resolves the positional argument into a point source configuration.
func (a *app) sourceConfig(args []string) (source.Config, error) {
	cfg := source.Fixed(source.Dataset(a.opts.source))
	if len(args) == 1 {
		count, err := source.ParseCount(args[0])
		if err != nil {
			return source.Config{}, err
		}
		cfg = source.Random(count)
	}

	cfg.Seed = a.opts.seed
	cfg.Path = a.opts.dataset
	cfg.Limit = a.opts.limit
	cfg.Logger = a.log

	return cfg, nil
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	srcCfg, err := a.sourceConfig(args)
	if err != nil {
		return err
	}

	format, err := report.ParseFormat(a.opts.format)
	if err != nil {
		return fmt.Errorf("%w: %w", source.ErrInvalidArgument, err)
	}

	if srcCfg.Mode == source.ModeFixed && srcCfg.Dataset == source.DatasetPostgres {
		repo, release, errConn := a.connect(ctx)
		if errConn != nil {
			return fmt.Errorf("%w: %w", source.ErrDataLoad, errConn)
		}
		defer release()
		srcCfg.Repo = repo
	}

	src, err := source.NewSource(srcCfg)
	if err != nil {
		return err
	}

	summary, err := service.NewPipeline(a.log, src, srcCfg.Name(), a.metrics).Run(ctx)
	if err != nil {
		return err
	}

	return report.New(cmd.OutOrStdout(), format).Render(summary)
}

func (a *app) connectPostgres(ctx context.Context) (repository.Interface, func(), error) {
	db := a.cfg.Database
	pool, err := repository.NewDatabase(ctx, db.Host, db.Port, db.User, db.Password, db.Name)
	if err != nil {
		return nil, nil, err
	}

	a.log.DebugContext(ctx, "Connected to database", "host", db.Host, "db", db.Name)

	return repository.NewRepository(pool, a.log), pool.Close, nil
}
