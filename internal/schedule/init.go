package schedule

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/vrecruit/vrecruit/internal/schedule/internal/repository/dao"
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

func initDAO(db *egorm.Component) dao.ScheduleDAO {
	InitTableOnce(db)
	return dao.NewGORMScheduleDAO(db)
}
