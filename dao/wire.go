package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewStatDAO,
	NewPostDAO,
	NewUserDAO,
)
