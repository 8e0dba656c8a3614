package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/rooseveltalej/proyecto3/internal/config"
	"github.com/rooseveltalej/proyecto3/pkg/logger"
	"github.com/rooseveltalej/proyecto3/internal/metrics"
	"github.com/rooseveltalej/proyecto3/internal/service"
	"github.com/rooseveltalej/proyecto3/internal/storage"
	"github.com/rooseveltalej/proyecto3/pkg/model"
)

var validFormats = []string{"json", "csv"}

// application holds what the commands share once flags and config are resolved
type application struct {
	cfgPath     string
	dbPath      string
	factsFile   string
	format      string
	outFile     string
	metricsFile string

	cfg      *config.Config
	log      logger.Logger
	registry *prometheus.Registry
	db       *sql.DB
	service  *service.Service
	exitCode int
}

var app = &application{}

var rootCmd = &cobra.Command{
	Use:               "scheduler",
	Short:             "Course timetabling engine",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: app.setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&app.cfgPath, "config", "c", "", "configuration file (yaml or json)")
	flags.StringVar(&app.dbPath, "db", "", "SQLite record store, overrides database.path")
	flags.StringVar(&app.factsFile, "facts", "", "JSON facts file to use instead of the record store")
	flags.StringVarP(&app.format, "format", "f", "json", "output format: json or csv")
	flags.StringVarP(&app.outFile, "out", "o", "", "output file; standard output when empty")
	flags.StringVar(&app.metricsFile, "metrics-file", "", "write search metrics to this file in the Prometheus text format")

	rootCmd.AddCommand(seedCmd, importCmd, factsCmd, scheduleCmd, generateCmd)
}

func (a *application) setup(cmd *cobra.Command, args []string) error {
	if !slices.Contains(validFormats, a.format) {
		return fmt.Errorf("%v is not a valid format", a.format)
	}

	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.dbPath != "" {
		cfg.Database.Path = a.dbPath
	}
	if err := logger.SetLevel(cfg.Logging.Level); err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.New("cli")

	a.registry = prometheus.NewRegistry()
	sink, err := metrics.NewPromSink(a.registry)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	// A facts file replaces the record store entirely
	if a.factsFile == "" {
		if a.db, err = storage.OpenDB(cfg.Database.Path); err != nil {
			return err
		}
	}

	a.service = service.New(service.Options{
		DB:       a.db,
		Search:   cfg.Search,
		Recorder: sink,
		Logger:   logger.New("scheduler"),
	})
	return nil
}

// run executes the root command. Teardown happens even when the command fails,
// since cobra skips post-run hooks after an error.
func (a *application) run() error {
	err := rootCmd.Execute()
	if teardownErr := a.teardown(); err == nil {
		err = teardownErr
	}
	return err
}

func (a *application) teardown() error {
	if a.metricsFile != "" && a.registry != nil {
		if err := metrics.WriteTextfile(a.metricsFile, a.registry); err != nil {
			return err
		}
	}
	if a.db != nil {
		db := a.db
		a.db = nil
		return db.Close()
	}
	return nil
}

// loadFacts fills the fact store from the facts file or the record store
func (a *application) loadFacts(ctx context.Context) error {
	if a.factsFile != "" {
		facts, err := model.FactsFromJson(a.factsFile)
		if err != nil {
			return err
		}
		a.warnSkipped(a.factsFile, facts)
		a.service.LoadFacts(facts)
		return nil
	}
	_, _, err := a.service.Reload(ctx)
	return err
}

func (a *application) warnSkipped(source string, facts model.Facts) {
	if facts.Skipped > 0 {
		a.log.Warnf("skipped %d malformed records from %s", facts.Skipped, source)
	}
}

func (a *application) requireDB() error {
	if a.db == nil {
		return fmt.Errorf("this command needs the record store and cannot be combined with --facts")
	}
	return nil
}

// output opens the destination selected by --out
func (a *application) output(cmd *cobra.Command) (io.WriteCloser, error) {
	if a.outFile == "" {
		return nopCloser{cmd.OutOrStdout()}, nil
	}
	file, err := os.Create(a.outFile)
	if err != nil {
		return nil, fmt.Errorf("an error occurred while opening the output file: %w", err)
	}
	return file, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
