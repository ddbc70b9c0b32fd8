package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-places-api/internal/core/apperr"
	"go-places-api/internal/core/auth"
	"go-places-api/internal/core/server"
	"go-places-api/internal/transport/http/handler"
	mdw "go-places-api/internal/transport/http/middleware"
	resp "go-places-api/internal/transport/http/response"
)

type Options struct {
	Logger     *zap.Logger
	JWTer      *auth.JWTer
	Places     *handler.PlaceHandler
	Users      *handler.UserHandler
	UploadsDir string // 为空则不挂静态目录
}

func NewAPIEngine(o Options) *gin.Engine {
	r := server.NewRouter(o.Logger)

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.SimpleRecovery(),
		mdw.Metrics(),
		mdw.AccessLog(o.Logger),
	)

	// 健康检查 + 指标
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 图片静态目录（上传机制不在本服务内，只负责伺服和删除时释放）
	if o.UploadsDir != "" {
		r.Static("/uploads/images", o.UploadsDir)
	}

	api := r.Group("/api")

	reg := NewRegistry()
	reg.Register(
		&placeModule{h: o.Places, jwter: o.JWTer},
		&userModule{h: o.Users},
	)
	reg.MountAll(api)

	// 未匹配路由统一 404
	r.NoRoute(func(c *gin.Context) {
		resp.Fail(c, apperr.NotFound("Could not find this route."))
	})
	return r
}

// ---------- places ----------

type placeModule struct {
	h     *handler.PlaceHandler
	jwter *auth.JWTer
}

func (m *placeModule) MountAPI(api *gin.RouterGroup) {
	g := api.Group("/places")

	// 读接口无需登录
	g.GET("/:pid", m.h.GetByID)
	g.GET("/:pid/:uid", m.h.ListByUser) // 实际是 /places/user/:uid，见 handler

	// 写接口全部过守卫
	authed := g.Group("")
	authed.Use(mdw.AuthJWT(m.jwter))
	authed.POST("", m.h.Create)
	authed.PATCH("/:pid", m.h.Update)
	authed.DELETE("/:pid", m.h.Delete)
}

// ---------- users ----------

type userModule struct {
	h *handler.UserHandler
}

func (m *userModule) MountAPI(api *gin.RouterGroup) {
	g := api.Group("/users")
	g.GET("", m.h.List)
	g.POST("/signup", m.h.Signup)
	g.POST("/login", m.h.Login)
}
