package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/watchlist/internal/shared"
	"github.com/urfave/cli/v3"
)

// InitDB runs migrations. With --drop every applied migration is rolled back first.
func (r *Runner) InitDB(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	if cmd.Bool("drop") {
		db, err := shared.NewDatabase(config.Database.Path)
		if err != nil {
			return fmt.Errorf("failed to create database: %w", err)
		}
		dropped, err := shared.RollbackAll(db)
		db.Close()
		if err != nil {
			return fmt.Errorf("failed to drop tables: %w", err)
		}
		r.logger.Info("dropped tables", "migrations", dropped)
	}

	db, err := r.openDatabase(config)
	if err != nil {
		return err
	}
	defer db.Close()

	return r.writePlain("%s\n", r.palette.OK("Initialized database."))
}

// Forge seeds the admin (named by --name) and the fixture movies.
func (r *Runner) Forge(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	db, err := r.openDatabase(config)
	if err != nil {
		return err
	}
	defer db.Close()

	result, err := r.newService(db).Forge(ctx, cmd.String("name"))
	if err != nil {
		return fmt.Errorf("forge failed: %w", err)
	}

	if err := r.writePlainHeader("Forged " + config.Database.Path); err != nil {
		return err
	}
	for _, line := range []string{
		fmt.Sprintf("admin:  %s (id %d)", result.Admin.Name, result.Admin.ID),
		fmt.Sprintf("movies: %d", len(result.Movies)),
		fmt.Sprintf("total:  %d", result.Total),
		r.palette.OK("Done."),
	} {
		if err := r.writePlain("%s\n", line); err != nil {
			return err
		}
	}
	return nil
}

// Admin prompts for credentials and creates or updates the admin account.
//
// The password is read twice without echo and both entries must match.
func (r *Runner) Admin(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	username := cmd.String("username")
	if username == "" {
		if username, err = r.prompter.Prompt("Username", false); err != nil {
			return err
		}
	}

	password, err := r.prompter.Prompt("Password", true)
	if err != nil {
		return err
	}
	confirm, err := r.prompter.Prompt("Repeat for confirmation", true)
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("%w: the two passwords do not match", shared.ErrInvalidInput)
	}

	db, err := r.openDatabase(config)
	if err != nil {
		return err
	}
	defer db.Close()

	created, err := r.newService(db).ProvisionAdmin(ctx, username, password)
	if err != nil {
		return fmt.Errorf("failed to save admin: %w", err)
	}

	status := "Updating user..."
	if created {
		status = "Creating user..."
	}
	if err := r.writePlain("%s\n", status); err != nil {
		return err
	}
	return r.writePlain("%s\n", r.palette.OK("Done."))
}

// ConfigInit writes the embedded example config to the --config path.
func (r *Runner) ConfigInit(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}
	r.logger.Info("config file created", "path", path)
	return r.writePlain("Wrote %s\n", path)
}

// ConfigShow prints the resolved configuration with the secret key masked.
func (r *Runner) ConfigShow(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	masked := *config
	if masked.Server.SecretKey != "" {
		masked.Server.SecretKey = "********"
	}
	return r.writeJSON(masked, cmd.Bool("pretty"))
}
