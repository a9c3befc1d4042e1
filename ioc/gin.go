package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/esgform/internal/catalog"
	"github.com/ecodeclub/esgform/internal/project"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(prjHdl *project.Handler,
	catalogHdl *catalog.Handler,
) *egin.Component {
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许我的域名过来的
			return strings.Contains(origin, "meoying.com")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	prjHdl.PublicRoutes(res.Engine)
	catalogHdl.PublicRoutes(res.Engine)
	return res
}
