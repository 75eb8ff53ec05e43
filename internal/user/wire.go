//go:build wireinject

package user

import (
	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/vrecruit/vrecruit/internal/pkg/snowflake"
	"github.com/vrecruit/vrecruit/internal/user/internal/repository"
	"github.com/vrecruit/vrecruit/internal/user/internal/repository/cache"
	"github.com/vrecruit/vrecruit/internal/user/internal/web"
)

func InitModule(db *egorm.Component, ec ecache.Cache, gen *snowflake.AppSnowflake) (*Module, error) {
	wire.Build(
		initDAO,
		cache.NewUserECache,
		repository.NewCachedUserRepository,
		initService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
