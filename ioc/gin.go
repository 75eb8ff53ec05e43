package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
	"github.com/vrecruit/vrecruit/internal/analytics"
	"github.com/vrecruit/vrecruit/internal/candidate"
	"github.com/vrecruit/vrecruit/internal/cos"
	"github.com/vrecruit/vrecruit/internal/evaluation"
	"github.com/vrecruit/vrecruit/internal/pkg/middleware"
	"github.com/vrecruit/vrecruit/internal/progress"
	"github.com/vrecruit/vrecruit/internal/report"
	"github.com/vrecruit/vrecruit/internal/schedule"
	"github.com/vrecruit/vrecruit/internal/user"
)

func initGinxServer(sp session.Provider,
	userHdl *user.Handler,
	candidateHdl *candidate.Handler,
	scheduleHdl *schedule.Handler,
	evaluationHdl *evaluation.Handler,
	progressHdl *progress.Handler,
	analyticsHdl *analytics.Handler,
	reportHdl *report.Handler,
	cosHdl *cos.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许我的域名过来的
			return strings.Contains(origin, "vrecruit.cn")
		},
	}))
	res.Use(middleware.NewMetricsBuilder().Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	userHdl.PublicRoutes(res.Engine)
	candidateHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	userHdl.PrivateRoutes(res.Engine)
	candidateHdl.PrivateRoutes(res.Engine)
	scheduleHdl.PrivateRoutes(res.Engine)
	evaluationHdl.PrivateRoutes(res.Engine)
	progressHdl.PrivateRoutes(res.Engine)
	analyticsHdl.PrivateRoutes(res.Engine)
	reportHdl.PrivateRoutes(res.Engine)
	cosHdl.PrivateRoutes(res.Engine)
	return res
}
