package commands

import (
	"fmt"
	"time"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/config"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/models"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(config.ServiceCLI)
			if err != nil {
				return err
			}
			defer log.Sync()

			db, err := config.OpenDatabase(&cfg.Database, log)
			if err != nil {
				return err
			}
			defer config.CloseDatabase(db)

			if err := models.AutoMigrate(db); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			log.Info("schema up to date", zap.Int("tables", len(models.All())))
			return nil
		},
	}
}

func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the admin account and sample rooms, places and coupon",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(config.ServiceCLI)
			if err != nil {
				return err
			}
			defer log.Sync()

			db, err := config.OpenDatabase(&cfg.Database, log)
			if err != nil {
				return err
			}
			defer config.CloseDatabase(db)

			if err := models.AutoMigrate(db); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			if err := utils.SeedDummyData(db, cfg.Seed.AdminPhone, cfg.Seed.AdminPassword, time.Now()); err != nil {
				return fmt.Errorf("seed failed: %w", err)
			}
			log.Info("seed data in place", zap.String("admin_phone", cfg.Seed.AdminPhone))
			return nil
		},
	}
}
