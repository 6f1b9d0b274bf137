package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/viant/rangecover/config"
	"github.com/viant/rangecover/coverage"
	"github.com/viant/rangecover/engine"
	"github.com/viant/rangecover/geom"
	"github.com/viant/rangecover/rangeadmin"
	"github.com/viant/rangecover/store"
)

type app struct {
	configPath string
	dsn        string
	logLevel   string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "rangecover",
		Short:         "Find the point covered by the most Manhattan ranges",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd.ErrOrStderr())
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a YAML or JSON config file")
	rootCmd.PersistentFlags().StringVar(&a.dsn, "db", "", "SQLite database path (overrides store.dsn)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	solveCmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve ranges read from a file (\"-\" for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runSolve,
	}

	importCmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Store ranges from a file as a new dataset and print its id",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runImport,
	}
	importCmd.Flags().String("name", "", "Dataset name (defaults to the file name)")

	queryCmd := &cobra.Command{
		Use:   "query [dataset]",
		Short: "Print the cached result of a dataset, solving it when needed",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runQuery,
	}

	coveringCmd := &cobra.Command{
		Use:   "covering [dataset] [x,y,z]",
		Short: "List the dataset's ranges that contain a point",
		Args:  cobra.ExactArgs(2),
		RunE:  a.runCovering,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored datasets",
		Args:  cobra.NoArgs,
		RunE:  a.runList,
	}

	rootCmd.AddCommand(solveCmd, importCmd, queryCmd, coveringCmd, listCmd)
	return rootCmd
}

func (a *app) load(stderr io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.dsn != "" {
		cfg.Store.DSN = a.dsn
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg
	a.logger = cfg.Logger(stderr)
	return nil
}

func (a *app) openStore(ctx context.Context) (*sql.DB, *store.SQLiteStore, error) {
	db, err := engine.Open(a.cfg.Store.DSN)
	if err != nil {
		return nil, nil, err
	}
	if a.cfg.Store.DSN == ":memory:" {
		db.SetMaxOpenConns(1)
	}
	s, err := store.NewSQLiteStore(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return db, s, nil
}

func readRanges(cmd *cobra.Command, path string) ([]geom.Range, error) {
	if path == "-" {
		return geom.ParseRanges(cmd.InOrStdin())
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ranges, err := geom.ParseRanges(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ranges, nil
}

func (a *app) runSolve(cmd *cobra.Command, args []string) error {
	ranges, err := readRanges(cmd, args[0])
	if err != nil {
		return err
	}
	opts := a.cfg.Options(a.logger)
	kind := coverage.ResolveKind(opts.Kind, ranges, opts.Root)
	a.logger.Info("solving", "ranges", len(ranges), "solver", string(kind))
	res, err := coverage.Solve(cmd.Context(), ranges, opts)
	if err != nil {
		return err
	}
	a.logger.Info("solved", "steps", res.Stats.Steps, "pushed", res.Stats.Pushed,
		"pruned", res.Stats.Pruned, "duration", res.Stats.Duration)
	fmt.Fprintln(cmd.OutOrStdout(), res.String())
	return nil
}

func (a *app) runImport(cmd *cobra.Command, args []string) error {
	ranges, err := readRanges(cmd, args[0])
	if err != nil {
		return err
	}
	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		name = args[0]
	}
	ctx := cmd.Context()
	db, s, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := s.CreateDataset(ctx, name)
	if err != nil {
		return err
	}
	if err := s.AddRanges(ctx, id, ranges); err != nil {
		_ = s.RemoveDataset(ctx, id)
		return err
	}
	a.logger.Info("imported", "dataset", id, "name", name, "ranges", len(ranges))
	fmt.Fprintln(cmd.OutOrStdout(), id)
	return nil
}

func (a *app) runQuery(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	db, _, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	op, res, err := rangeadmin.Resolve(ctx, db, args[0], a.cfg.Options(a.logger))
	if err != nil {
		return err
	}
	a.logger.Info("query", "dataset", args[0], "op", op)
	fmt.Fprintln(cmd.OutOrStdout(), res.String())
	return nil
}

func (a *app) runCovering(cmd *cobra.Command, args []string) error {
	p, err := parseCoord(args[1])
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	db, s, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	ranges, err := s.Covering(ctx, args[0], p)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, r := range ranges {
		fmt.Fprintln(out, r.String())
	}
	fmt.Fprintf(out, "%d ranges contain %s\n", len(ranges), p)
	return nil
}

func (a *app) runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	db, s, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	datasets, err := s.Datasets(ctx)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, d := range datasets {
		fmt.Fprintf(out, "%s\t%s\t%d\n", d.ID, d.Name, d.Ranges)
	}
	return nil
}

// parseCoord parses "x,y,z", optionally wrapped in angle brackets.
func parseCoord(v string) (geom.Coord, error) {
	var c geom.Coord
	parts := strings.Split(strings.Trim(strings.TrimSpace(v), "<>"), ",")
	if len(parts) != geom.Dims {
		return c, fmt.Errorf("invalid point %q: want x,y,z", v)
	}
	for i, part := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return c, fmt.Errorf("invalid point %q: %w", v, err)
		}
		c[i] = n
	}
	return c, nil
}
