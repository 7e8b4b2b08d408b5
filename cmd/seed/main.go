package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"Postagram/internal/api/middleware"
	"Postagram/internal/app"
	"Postagram/internal/config"
	"Postagram/internal/db/postgres"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatal("Failed to load .env file:", err)
	}

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	databaseFlag := &cli.StringFlag{
		Name:    "database-url",
		Usage:   "Postgres connection string",
		EnvVars: []string{"DATABASE_URL"},
		Value:   config.DefaultDatabaseURL,
	}

	return &cli.App{
		Name:  "postagram-seed",
		Usage: "Database maintenance and demo data for Postagram",
		Commands: []*cli.Command{
			{
				Name:   "migrate",
				Usage:  "Apply all pending schema migrations",
				Action: migrateCommand,
				Flags:  []cli.Flag{databaseFlag},
			},
			{
				Name:   "seed",
				Usage:  "Create demo users, images, posts, comments and reactions",
				Action: seedCommand,
				Flags: []cli.Flag{
					databaseFlag,
					&cli.StringFlag{
						Name:    "backend",
						Aliases: []string{"b"},
						Usage:   "Storage backend (memory, postgres); memory is a dry run",
						EnvVars: []string{"STORAGE_BACKEND"},
						Value:   string(config.BackendPostgres),
					},
					&cli.BoolFlag{
						Name:  "reset",
						Usage: "Delete all existing data before seeding",
					},
				},
			},
			{
				Name:   "token",
				Usage:  "Issue an access token for a user id",
				Action: tokenCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "user",
						Aliases:  []string{"u"},
						Usage:    "User id to put in the token subject",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "secret",
						Usage:    "HMAC secret shared with the server",
						EnvVars:  []string{"JWT_SECRET"},
						Required: true,
					},
					&cli.DurationFlag{
						Name:  "ttl",
						Usage: "Token lifetime",
						Value: config.DefaultTokenTTL,
					},
				},
			},
		},
	}
}

func migrateCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := postgres.Open(ctx, c.String("database-url"))
	if err != nil {
		return err
	}
	defer db.Close()

	if err := postgres.Migrate(db); err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, "Migrations completed successfully")
	return nil
}

func seedCommand(c *cli.Context) error {
	ctx := context.Background()

	backend := config.Backend(c.String("backend"))
	repos, err := app.Open(ctx, &config.Config{Backend: backend, DatabaseURL: c.String("database-url")})
	if err != nil {
		return err
	}
	defer repos.Close()

	if c.Bool("reset") {
		if err := repos.Reset(ctx); err != nil {
			return fmt.Errorf("failed to reset data: %w", err)
		}
		fmt.Fprintln(c.App.Writer, "Existing data deleted")
	}

	summary, err := seedDemo(ctx, app.NewServices(repos))
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Seeded %s storage: %s\n", backend, summary)
	for _, u := range summary.Users {
		fmt.Fprintf(c.App.Writer, "  %s  %s (password %q)\n", u.ID, u.Username, demoPassword)
	}
	return nil
}

func tokenCommand(c *cli.Context) error {
	ttl := c.Duration("ttl")
	if ttl <= 0 {
		return fmt.Errorf("ttl must be greater than 0")
	}

	token, err := middleware.IssueToken(c.String("secret"), c.String("user"), ttl)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "%s\n", token)
	fmt.Fprintf(c.App.ErrWriter, "expires at %s\n", time.Now().Add(ttl).UTC().Format(time.RFC3339))
	return nil
}
