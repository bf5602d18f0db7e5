package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pooja-setu/internal/domain"
	mdw "pooja-setu/internal/transport/http/middleware"
)

// NewAdminEngine assembles the operator engine under /admin/v1. The whole
// group is gated on the admin role.
func NewAdminEngine(d Deps) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(d.Log, true),
		cors.Default(),
		mdw.Metrics(),
		mdw.AccessLog(d.Log),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	admin := r.Group("/admin/v1")
	admin.Use(
		mdw.Authenticate(d.JWT, d.Users),
		mdw.RequireRoles(domain.RoleAdmin),
	)

	mountAdminActions(admin, d)

	return r
}
