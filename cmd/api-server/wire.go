//go:build wireinject
// +build wireinject

package main

import (
	"Club/config"
	"Club/dao"
	"Club/dao/cache"
	"Club/handler"
	"Club/middleware"
	"Club/pkg/client"
	"Club/pkg/database"
	"Club/pkg/server"
	"Club/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		database.NewDB,
		server.NewGinEngine,

		middleware.NewAuth,

	cache.NewReplyUpStorage,
	cache.NewCollectStorage,

		wire.Struct(new(handler.TopicHandler), "*"),
		wire.Struct(new(handler.UserHandler), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
	)
	return nil
}
