package members_fx

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
	"gymapi/internal/repositories"
	"gymapi/internal/services"
)

var Module = fx.Provide(
	provideMemberService)

func provideMemberService(store repositories.Store, log logrus.FieldLogger) services.MemberServiceInterface {
	return services.NewMemberService(store, log)
}
