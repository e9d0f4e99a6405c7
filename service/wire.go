package service

import (
	"Quill/dao"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Bind(new(StatStore), new(*dao.StatDAO)),
	wire.Bind(new(PostStore), new(*dao.PostDAO)),
	wire.Bind(new(UserStore), new(*dao.UserDAO)),

	wire.Struct(new(StatService), "*"),
	wire.Bind(new(IStatService), new(*StatService)),

	wire.Struct(new(RoleService), "*"),
	wire.Bind(new(IRoleService), new(*RoleService)),
)
