package commands

import (
	"context"
	"fmt"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/config"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/models"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/routes"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/services"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/store"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/utils"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the REST API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(config.ServiceAPI)
			if err != nil {
				return err
			}
			defer log.Sync()

			if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
				cfg.HTTP.Addr = addr
			}
			migrate, _ := cmd.Flags().GetBool("migrate")
			return serve(cmd.Context(), cfg, log, migrate)
		},
	}
	cmd.Flags().String("addr", "", "listen address (overrides HTTP_ADDR)")
	cmd.Flags().Bool("migrate", true, "run AutoMigrate before serving")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, log *zap.Logger, migrate bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	gin.SetMode(cfg.GinMode)

	db, err := config.OpenDatabase(&cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := config.CloseDatabase(db); err != nil {
			log.Warn("closing database", zap.Error(err))
		}
	}()
	if migrate {
		if err := models.AutoMigrate(db); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	kv, closeKV, err := openKV(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeKV()

	svc := services.New(db, kv, services.Options{
		Tokens:     utils.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTTL),
		RefreshTTL: cfg.JWT.RefreshTTL,
		HotelName:  cfg.HotelName,
		Log:        log,
	})
	return newServer(cfg.HTTP.Addr, routes.SetupRouter(svc, log), log).run(ctx)
}

// openKV picks Redis when enabled, otherwise a process-local store.
func openKV(ctx context.Context, cfg *config.Config, log *zap.Logger) (store.KV, func(), error) {
	if !cfg.Redis.Enabled {
		log.Info("redis disabled, using in-memory token store")
		return store.NewMemoryKV(), func() {}, nil
	}
	client, err := config.NewRedisClient(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	log.Info("redis connected", zap.String("addr", cfg.Redis.Addr))
	return store.NewRedisKV(client), func() { _ = client.Close() }, nil
}
