package service

import (
	"Club/pkg/markdown"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(TopicService), "*"),
	wire.Bind(new(ITopicService), new(*TopicService)),

	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(AtService), "*"),
	wire.Bind(new(IAtService), new(*AtService)),

	markdown.New,
)
