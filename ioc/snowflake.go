package ioc

import (
	"github.com/gotomicro/ego/core/econf"
	"github.com/vrecruit/vrecruit/internal/pkg/snowflake"
)

func InitSnowflake() *snowflake.AppSnowflake {
	nodeId := econf.GetInt("snowflake.nodeId")
	gen, err := snowflake.NewAppSnowflake(uint(nodeId))
	if err != nil {
		panic(err)
	}
	return gen
}
