package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pooja-setu/internal/core/auth"
	"pooja-setu/internal/domain"
	"pooja-setu/internal/service"
	mdw "pooja-setu/internal/transport/http/middleware"
)

// Deps is everything the engines need wired in from main.
type Deps struct {
	Log      *zap.Logger
	DB       *gorm.DB
	JWT      *auth.JWTer
	Users    domain.UserRepository
	Profiles *service.ProfileService
	Catalog  *service.CatalogService
	Rituals  *service.RitualService
}

// NewAPIEngine assembles the user-facing engine: public catalog reads plus
// the authenticated profile and ritual surfaces under /api/v1.
func NewAPIEngine(d Deps) *gin.Engine {
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

	api := r.Group("/api/v1")

	// public catalog reads
	mountCatalogReads(api, d)

	// everything else requires a verified gateway token
	authed := api.Group("")
	authed.Use(mdw.Authenticate(d.JWT, d.Users))

	mountAuthActions(authed, d)
	mountRitualActions(authed, d)

	return r
}
