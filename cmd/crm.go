package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"crm/internal/config"
	"crm/internal/core"
	"crm/internal/db"
	"crm/internal/repository"
	"crm/internal/shell"
	"crm/pkg/log"
	"crm/pkg/password"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
)

var version = "dev"

// CLI holds the startup flags. Anything left empty falls back to the config
// file and CRM_* environment variables.
type CLI struct {
	Config   string           `help:"Path to the YAML config file." default:"crm.yaml" type:"path"`
	DB       string           `name:"db" help:"SQLite database file." type:"path"`
	Driver   string           `help:"Database driver (sqlite, postgres or mysql)."`
	DSN      string           `name:"dsn" help:"PostgreSQL or MySQL connection string."`
	LogLevel string           `help:"Log level (debug, info, warn, error)."`
	LogFile  string           `help:"Write logs to this file instead of stderr." type:"path"`
	Output   string           `help:"How contacts are printed (table or json)."`
	Version  kong.VersionFlag `help:"Show version." short:"V"`
}

func (c CLI) apply(cfg *config.App) {
	if c.DB != "" {
		cfg.Database.Path = c.DB
	}
	if c.Driver != "" {
		cfg.Database.Driver = c.Driver
	}
	if c.DSN != "" {
		cfg.Database.DSN = c.DSN
	}
	if c.LogLevel != "" {
		cfg.Log.Level = c.LogLevel
	}
	if c.LogFile != "" {
		cfg.Log.File = c.LogFile
	}
	if c.Output != "" {
		cfg.Output = c.Output
	}
}

func parseFlags(args []string) (CLI, error) {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("crm"),
		kong.Description("Single-user contact manager."),
		kong.Vars{"version": version},
	)
	if err != nil {
		return CLI{}, fmt.Errorf("build flag parser: %w", err)
	}

	if _, err := parser.Parse(args); err != nil {
		return CLI{}, fmt.Errorf("parse flags: %w", err)
	}

	return cli, nil
}

func loadConfig(cli CLI) (config.App, error) {
	cfg, err := config.NewApp(cli.Config)
	if err != nil {
		return config.App{}, err
	}

	cli.apply(&cfg)

	if err := cfg.Validate(); err != nil {
		return config.App{}, err
	}
	return cfg, nil
}

func Start() error {
	cli, err := parseFlags(os.Args[1:])
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}

	var outputs []string
	if cfg.Log.File != "" {
		outputs = append(outputs, cfg.Log.File)
	}

	logger, err := log.NewZapLogger("crm", level, outputs...)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	hdlr, closeDB, err := build(cfg, logger, os.Stdin, os.Stdout)
	if err != nil {
		logger.Errorw("failed to start", "error", err)
		return err
	}
	defer func() {
		if err := closeDB(); err != nil {
			logger.Errorw("failed to close database", "error", err)
		}
	}()

	return run(hdlr)
}

// build wires storage, repository, core and the shell for cfg.
func build(cfg config.App, logger *zap.SugaredLogger, in io.Reader, out io.Writer) (*shell.Handler, func() error, error) {
	var (
		dbConn *db.GormDB
		err    error
	)
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		dbConn, err = db.NewPostgresDB(cfg.Database.DSN, logger, cfg.Database.Debug)
	case config.DriverMySQL:
		dbConn, err = db.NewMySQLDB(cfg.Database.DSN, logger, cfg.Database.Debug)
	default:
		dbConn, err = db.NewSQLiteDB(cfg.Database.Path, logger, cfg.Database.Debug)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	hasher, err := password.New(cfg.Password.Scheme, cfg.Password.BcryptCost)
	if err != nil {
		_ = dbConn.Close()
		return nil, nil, err
	}

	// repository
	repo := repository.NewCRMRepository(dbConn)

	// crm
	crm := core.NewCRM(logger, repo, hasher)

	// shell
	hdlr := shell.NewHandler(logger, crm, in, out, shell.Options{Output: cfg.Output})

	return hdlr, dbConn.Close, nil
}

func run(hdlr *shell.Handler) error {
	// a blocked read on stdin cannot be interrupted, so the shell runs on its own
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		errChan <- hdlr.Run(ctx)
	}()

	var err error
	select {
	case <-ctx.Done():
	case err = <-errChan:
	}

	return err
}
