package controllers_fx

import (
	"go.uber.org/fx"
	"gymapi/internal/api"
	"gymapi/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPlansController),
	fx.Provide(controllers.NewMembersController),
	fx.Provide(controllers.NewHealthController),
	fx.Provide(api.ProvideRouter))
