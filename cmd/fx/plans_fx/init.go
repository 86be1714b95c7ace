package plans_fx

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
	"gymapi/internal/repositories"
	"gymapi/internal/services"
)

var Module = fx.Provide(
	providePlanService)

func providePlanService(store repositories.Store, log logrus.FieldLogger) services.PlanServiceInterface {
	return services.NewPlanService(store, log)
}
