package user

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/vrecruit/vrecruit/internal/pkg/snowflake"
	"github.com/vrecruit/vrecruit/internal/user/internal/repository"
	"github.com/vrecruit/vrecruit/internal/user/internal/repository/dao"
	"github.com/vrecruit/vrecruit/internal/user/internal/service"
	"gorm.io/gorm"
)

var daoOnce = sync.Once{}

func InitTableOnce(db *gorm.DB) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func initDAO(db *egorm.Component) dao.UserDAO {
	InitTableOnce(db)
	return dao.NewGORMUserDAO(db)
}

func initService(repo repository.UserRepository, gen *snowflake.AppSnowflake) service.UserService {
	return service.NewUserService(repo, gen)
}
