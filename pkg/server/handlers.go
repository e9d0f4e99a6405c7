package server

import (
	"Quill/handler"
)

type Handlers struct {
	Stat   *handler.Stat
	Admin  *handler.Admin
	Health *handler.Health
}
