//go:build wireinject

package candidate

import (
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/vrecruit/vrecruit/internal/candidate/internal/repository"
	"github.com/vrecruit/vrecruit/internal/candidate/internal/service"
	"github.com/vrecruit/vrecruit/internal/candidate/internal/web"
	"github.com/vrecruit/vrecruit/internal/user"
)

func InitModule(db *egorm.Component, userModule *user.Module) (*Module, error) {
	wire.Build(
		initDAO,
		repository.NewProfileRepository,
		wire.FieldsOf(new(*user.Module), "Svc"),
		service.NewCandidateService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
