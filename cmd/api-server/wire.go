//go:build wireinject
// +build wireinject

package main

import (
	"Recette/config"
	"Recette/dao"
	"Recette/handler"
	"Recette/pkg/client"
	"Recette/pkg/database"
	"Recette/pkg/server"
	"Recette/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		config.ProvideStorageConfig,
		server.NewGinEngine,

		dao.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Recipe), "*"),
		wire.Struct(new(handler.Comment), "*"),
		wire.Struct(new(handler.Like), "*"),

		wire.Struct(new(server.Handlers), "*"),
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil
}
