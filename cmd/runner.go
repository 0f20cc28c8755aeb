package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/watchlist/internal/repositories"
	"github.com/desertthunder/watchlist/internal/shared"
	"github.com/desertthunder/watchlist/internal/ui"
	"github.com/desertthunder/watchlist/internal/watchlist"
	"github.com/jmoiron/sqlx"
	"github.com/urfave/cli/v3"
)

// envFile is read before WATCHLIST_* overrides are applied.
const envFile = ".env"

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	logger     *log.Logger
	output     io.Writer
	prompter   ui.Prompter
	palette    *ui.Palette
}

// RunnerOpts contains configuration options for creating a Runner.
//
// When Config is nil each command resolves its own from the --config flag.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Logger     *log.Logger
	Output     io.Writer
	Prompter   ui.Prompter
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Prompter == nil {
		opts.Prompter = ui.NewTerminalPrompter(os.Stdin, os.Stderr)
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		logger:     opts.Logger,
		output:     opts.Output,
		prompter:   opts.Prompter,
		palette:    ui.Styles,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		initdbCommand, forgeCommand, adminCommand, serveCommand, configCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// loadConfig returns the injected config or resolves one from the --config flag.
func (r *Runner) loadConfig(cmd *cli.Command) (*shared.Config, error) {
	if r.config != nil {
		return r.config, nil
	}

	path := cmd.String("config")
	if path == "" {
		path = r.configPath
	}

	config, err := shared.ResolveConfig(path, envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	r.logger.Debug("config resolved", "path", path, "database", config.Database.Path)
	return config, nil
}

// openDatabase opens the configured database and applies pending migrations.
func (r *Runner) openDatabase(config *shared.Config) (*sqlx.DB, error) {
	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to create database: %w", err)
	}
	shared.ConfigureDatabase(db, config.Database.Path, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	applied, err := shared.RunMigrations(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	if applied > 0 {
		r.logger.Info("applied migrations", "count", applied, "path", config.Database.Path)
	}
	return db, nil
}

func (r *Runner) newService(db *sqlx.DB) *watchlist.Service {
	return watchlist.NewService(repositories.NewMovieRepository(db), repositories.NewUserRepository(db), r.logger)
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(append(output, '\n')); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) error {
	const rule = "═══════════════════════════════════════\n"
	if err := r.writePlain(rule); err != nil {
		return err
	}
	if err := r.writePlain("%v\n", r.palette.Title(title)); err != nil {
		return err
	}
	return r.writePlain(rule)
}
