//go:build wireinject

package startup

import (
	"github.com/google/wire"
	testioc "github.com/vrecruit/vrecruit/internal/test/ioc"
	"github.com/vrecruit/vrecruit/internal/user"
)

func InitModule() (*user.Module, error) {
	wire.Build(
		testioc.BaseSet,
		user.InitModule,
	)
	return new(user.Module), nil
}
