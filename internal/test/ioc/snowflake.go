package testioc

import (
	"github.com/vrecruit/vrecruit/internal/pkg/snowflake"
)

var gen *snowflake.AppSnowflake

func InitSnowflake() *snowflake.AppSnowflake {
	if gen != nil {
		return gen
	}
	g, err := snowflake.NewAppSnowflake(0)
	if err != nil {
		panic(err)
	}
	gen = g
	return gen
}
