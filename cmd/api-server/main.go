package main

import (
	"Recette/config"
	"Recette/models"
	"Recette/pkg/database"
	"Recette/pkg/log"
	"Recette/pkg/server"
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
		Name: "api-server",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					return server.Run(ctx, InitServer(cfg))
				},
			},
			{
				Name:  "migrate",
				Usage: "run database migrations",
				Action: func(ctx *cli.Context) error {
					db := database.NewDB(cfg)
					return db.AutoMigrate(
						&models.User{},
						&models.Recipe{},
						&models.Comment{},
						&models.Like{},
					)
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
