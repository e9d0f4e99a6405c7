//go:build wireinject
// +build wireinject

package main

import (
	"Quill/config"
	"Quill/dao"
	"Quill/dao/cache"
	"Quill/handler"
	"Quill/pkg/client"
	"Quill/pkg/database"
	"Quill/pkg/server"
	"Quill/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, error) {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		server.NewGinEngine,

		cache.ProviderSet,
		dao.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Stat), "*"),
		wire.Struct(new(handler.Admin), "*"),
		wire.Struct(new(handler.Health), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),
	)
	return nil, nil
}
