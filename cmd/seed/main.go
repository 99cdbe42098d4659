// main.go - Command-line entry point for seeding the employee database
// Usage: go run ./cmd/seed [--db employee.db]

package main // Declares the package name

import ( // Import required packages
	"context" // CLI context
	"os"      // Args and stdout

	"go-employee-backend/config" // Default database path
	"go-employee-backend/logger" // Console logger
	"go-employee-backend/seed"   // Seed sequence

	"github.com/urfave/cli/v3" // CLI framework
)

func main() {
	log := logger.New("info", nil)

	dbPath := "employee.db"
	cfg, err := config.Load()
	if err != nil {
		log.Warn().Err(err).Msg("ignoring invalid configuration, using defaults")
	} else {
		dbPath = cfg.DBPath
		log = logger.New(cfg.LogLevel, nil)
	}

	app := &cli.Command{
		Name:  "seed",
		Usage: "Create the users table, load sample rows and remove duplicate emails",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to the SQLite database file",
				Value:   dbPath,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			db, err := seed.Open(cmd.String("db"))
			if err != nil {
				return err
			}
			defer db.Close()

			return seed.Run(ctx, db, os.Stdout, log)
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
}
