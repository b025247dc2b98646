package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotelbooking/internal/seed"
	"hotelbooking/internal/storage"
	"hotelbooking/pkg/config"

	"github.com/spf13/cobra"
)

const storeCommandTimeout = 2 * time.Minute

// openStorage connects to the storage configured in the environment. Replaced in tests.
var openStorage = func() (*config.Config, *storage.Stores) {
	cfg := config.Load(ServiceName)
	return cfg, storage.Open(cfg)
}

func withStorage(fn func(ctx context.Context, cfg *config.Config, stores *storage.Stores) error) error {
	cfg, stores := openStorage()
	defer cfg.GracefulShutdown()

	ctx, cancel := context.WithTimeout(context.Background(), storeCommandTimeout)
	defer cancel()
	return fn(ctx, cfg, stores)
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create collections, tables and indexes for the configured storage driver",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStorage(func(ctx context.Context, cfg *config.Config, _ *storage.Stores) error {
				if err := storage.Migrate(ctx, cfg); err != nil {
					return fmt.Errorf("migration failed: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "migrated %s storage\n", cfg.StorageDriver)
				return nil
			})
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the River View Retreat demo hotel if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStorage(func(ctx context.Context, cfg *config.Config, stores *storage.Stores) error {
				res, err := seed.NewSeeder(stores.Hotels, stores.Ledger, cfg.Log).SeedRiverView(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), res)
			})
		},
	}
}

var errResetNotConfirmed = errors.New("reset deletes every hotel and booking, pass --yes to confirm")

func newResetCmd() *cobra.Command {
	var confirmed bool

	c := &cobra.Command{
		Use:   "reset",
		Short: "Delete all bookings, hotels and rooms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return errResetNotConfirmed
			}
			return withStorage(func(ctx context.Context, cfg *config.Config, stores *storage.Stores) error {
				if err := seed.NewSeeder(stores.Hotels, stores.Ledger, cfg.Log).Reset(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "all data deleted")
				return nil
			})
		},
	}

	c.Flags().BoolVar(&confirmed, "yes", false, "confirm deletion")
	return c
}
