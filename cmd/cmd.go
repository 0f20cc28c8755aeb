// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// initdbCommand creates the schema, optionally dropping it first
func initdbCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "initdb",
		Usage: "Initialize the database",
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "drop",
				Usage: "Drop all tables before creating them",
			},
		},
		Action: r.InitDB,
	}
}

// forgeCommand seeds the admin and the fixture movies
func forgeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "forge",
		Usage: "Generate fake data",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:  "name",
				Usage: "Display name of the admin",
				Value: "Admin",
			},
		},
		Action: r.Forge,
	}
}

// adminCommand creates or updates the admin login
func adminCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "admin",
		Usage: "Create or update the admin user",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:    "username",
				Aliases: []string{"u"},
				Usage:   "Login name; prompted for when omitted",
			},
		},
		Action: r.Admin,
	}
}

// serveCommand runs the web application
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the HTTP server",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:  "host",
				Usage: "Interface to bind (overrides server.host)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to listen on (overrides server.port)",
			},
		},
		Action: r.Serve,
	}
}

// configCommand manages the config file
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration file operations",
		Commands: []*cli.Command{
			{
				Name:   "init",
				Usage:  "Write the example configuration to disk",
				Flags:  []cli.Flag{configFlag()},
				Action: r.ConfigInit,
			},
			{
				Name:  "show",
				Usage: "Print the resolved configuration as JSON",
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.ConfigShow,
			},
		},
	}
}
