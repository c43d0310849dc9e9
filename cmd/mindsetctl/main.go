package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/urfave/cli/v2"

	"github.com/mindsethq/mindset-backend/internal/app/migrations"
	"github.com/mindsethq/mindset-backend/internal/app/models"
	"github.com/mindsethq/mindset-backend/internal/app/repositories"
	"github.com/mindsethq/mindset-backend/internal/app/services"
	"github.com/mindsethq/mindset-backend/internal/bootstrap"
	"github.com/mindsethq/mindset-backend/internal/config"
	"github.com/mindsethq/mindset-backend/internal/db"
	"github.com/mindsethq/mindset-backend/internal/pkg/apperrors"
	"github.com/mindsethq/mindset-backend/internal/seed"
)

// mindsetctl is the operational companion to the API server. It covers
// the tasks an operator runs outside the request path: applying
// migrations, installing reference data and managing admin accounts.

func main() {
	app := &cli.App{
		Name:  "mindsetctl",
		Usage: "operational tasks for the mindset backend",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the configuration file",
				Value:   "configs/config.yaml",
				EnvVars: []string{"CONFIG_PATH"},
			},
		},
		Commands: []*cli.Command{
			dbCommand(),
			adminCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// withPool loads config, opens the connection pool and hands it to fn.
// The pool is closed before returning.
func withPool(c *cli.Context, fn func(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) error) error {
	os.Setenv("CONFIG_PATH", c.String("config"))
	cfg, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return err
	}

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	return fn(ctx, cfg, database.Pool)
}

func dbCommand() *cli.Command {
	return &cli.Command{
		Name:  "db",
		Usage: "database maintenance",
		Subcommands: []*cli.Command{
			{
				Name:   "init",
				Usage:  "create the schema and install all reference data",
				Action: dbInit,
			},
			{
				Name:   "upgrade",
				Usage:  "apply pending migrations",
				Action: dbUpgrade,
			},
			{
				Name:   "seed",
				Usage:  "install all reference data",
				Action: seedAction(),
			},
			{
				Name:   "seed-modes",
				Usage:  "install the delivery mode reference data",
				Action: seedAction(models.LookupDeliveryModes),
			},
			{
				Name:   "seed-event-types",
				Usage:  "install the event type reference data",
				Action: seedAction(models.LookupEventTypes),
			},
			{
				Name:   "seed-registration-statuses",
				Usage:  "install the registration status reference data",
				Action: seedAction(models.LookupRegistrationStatuses),
			},
		},
	}
}

func dbInit(c *cli.Context) error {
	return withPool(c, func(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) error {
		if err := migrate(pool, cfg.Bootstrap.MigrationsDir); err != nil {
			return err
		}
		return seedLookups(ctx, pool)
	})
}

func dbUpgrade(c *cli.Context) error {
	return withPool(c, func(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) error {
		return migrate(pool, cfg.Bootstrap.MigrationsDir)
	})
}

func migrate(pool *pgxpool.Pool, dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return fmt.Errorf("migrations directory not found at %s", dir)
	}
	migrator := migrations.NewMigrator(pool)
	if err := migrator.MigrateFromDirectory(dir); err != nil {
		return fmt.Errorf("database migrations failed: %w", err)
	}
	fmt.Println("Migrations applied.")
	return nil
}

// seedAction builds a command action that seeds the named lookup
// kinds, or every kind when none are given.
func seedAction(kinds ...models.LookupKind) cli.ActionFunc {
	return func(c *cli.Context) error {
		return withPool(c, func(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) error {
			return seedLookups(ctx, pool, kinds...)
		})
	}
}

func seedLookups(ctx context.Context, pool *pgxpool.Pool, kinds ...models.LookupKind) error {
	repos := repositories.NewRepositories(pool)
	stores := map[models.LookupKind]*repositories.LookupRepository{
		models.LookupDeliveryModes:        repos.DeliveryModeRepository,
		models.LookupEventTypes:           repos.EventTypeRepository,
		models.LookupRegistrationStatuses: repos.RegistrationStatusRepository,
	}
	if len(kinds) == 0 {
		kinds = []models.LookupKind{models.LookupDeliveryModes, models.LookupEventTypes, models.LookupRegistrationStatuses}
	}

	for _, kind := range kinds {
		created, err := seed.ApplyLookup(ctx, stores[kind])
		if err != nil {
			return fmt.Errorf("seeding %s failed: %w", kind, err)
		}
		fmt.Printf("%s: %d created\n", kind, created)
	}
	return nil
}

func adminCommand() *cli.Command {
	return &cli.Command{
		Name:  "admin",
		Usage: "manage admin accounts",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "list admin accounts",
				Action: adminList,
			},
			{
				Name:  "get",
				Usage: "show one admin account",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "id", Required: true},
				},
				Action: adminGet,
			},
			{
				Name:  "create",
				Usage: "create an admin account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "full-name", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
				},
				Action: adminCreate,
			},
			{
				Name:  "update",
				Usage: "update an admin account",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "id", Required: true},
					&cli.StringFlag{Name: "email"},
					&cli.StringFlag{Name: "full-name"},
					&cli.StringFlag{Name: "password"},
					&cli.BoolFlag{Name: "active"},
					&cli.BoolFlag{Name: "inactive"},
				},
				Action: adminUpdate,
			},
			{
				Name:  "delete",
				Usage: "delete an admin account",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "id", Required: true},
				},
				Action: adminDelete,
			},
		},
	}
}

func adminService(pool *pgxpool.Pool) services.AdminService {
	repos := repositories.NewRepositories(pool)
	return services.NewAdminService(repos.AdminRepository)
}

func adminList(c *cli.Context) error {
	return withPool(c, func(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) error {
		admins, err := adminService(pool).GetAdmins(ctx, repositories.ListParams{})
		if err != nil {
			return err
		}
		for _, admin := range admins {
			printAdmin(admin)
		}
		return nil
	})
}

func adminGet(c *cli.Context) error {
	return withPool(c, func(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) error {
		admin, err := adminService(pool).GetAdminByID(ctx, c.Int64("id"))
		if err != nil {
			return err
		}
		printAdmin(admin)
		return nil
	})
}

func adminCreate(c *cli.Context) error {
	return withPool(c, func(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) error {
		admin, err := adminService(pool).CreateAdmin(ctx,
			c.String("email"), c.String("full-name"), c.String("password"))
		if errors.Is(err, apperrors.ErrConflict) {
			return fmt.Errorf("an admin with email %s already exists", c.String("email"))
		}
		if err != nil {
			return err
		}
		fmt.Printf("Created admin %d (%s)\n", admin.ID, admin.Email)
		return nil
	})
}

func adminUpdate(c *cli.Context) error {
	return withPool(c, func(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) error {
		var email, fullName, password *string
		var isActive *bool
		if c.IsSet("email") {
			v := c.String("email")
			email = &v
		}
		if c.IsSet("full-name") {
			v := c.String("full-name")
			fullName = &v
		}
		if c.IsSet("password") {
			v := c.String("password")
			password = &v
		}
		if c.Bool("active") {
			v := true
			isActive = &v
		}
		if c.Bool("inactive") {
			v := false
			isActive = &v
		}

		id := c.Int64("id")
		if err := adminService(pool).UpdateAdmin(ctx, id, email, fullName, password, isActive); err != nil {
			return err
		}
		fmt.Printf("Updated admin %d\n", id)
		return nil
	})
}

func adminDelete(c *cli.Context) error {
	return withPool(c, func(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) error {
		id := c.Int64("id")
		if err := adminService(pool).DeleteAdmin(ctx, id); err != nil {
			if errors.Is(err, apperrors.ErrRestrictedDelete) {
				return fmt.Errorf("admin %d has authored blog posts and cannot be deleted", id)
			}
			return err
		}
		fmt.Printf("Deleted admin %d\n", id)
		return nil
	})
}

func printAdmin(admin *models.Admin) {
	state := "active"
	if !admin.IsActive {
		state = "inactive"
	}
	fmt.Printf("%d\t%s\t%s\t%s\n", admin.ID, admin.Email, admin.FullName, state)
}
