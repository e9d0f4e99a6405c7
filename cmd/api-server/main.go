package main

import (
	"Quill/config"
	"Quill/models"
	"Quill/pkg/database"
	"Quill/pkg/log"
	"Quill/pkg/server"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "blog statistics service",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					appProvider, err := InitServer(cfg)
					if err != nil {
						return err
					}
					if cfg.Debug() {
						if err := models.AutoMigrate(appProvider.DB); err != nil {
							return err
						}
					}
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update database tables",
				Action: func(ctx *cli.Context) error {
					db, err := database.NewDB(cfg)
					if err != nil {
						return err
					}
					if err := models.AutoMigrate(db.WithContext(ctx.Context)); err != nil {
						return err
					}
					log.L.Info("migrate success")
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
