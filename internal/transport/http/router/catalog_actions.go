package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pooja-setu/internal/domain"
	httpez "pooja-setu/internal/transport/http/ez"
)

// mountCatalogReads exposes the public, cached catalog listings.
func mountCatalogReads(g *gin.RouterGroup, d Deps) {
	ezPub := httpez.New(g)

	httpez.RegisterAction[struct{}, []domain.Service](ezPub, d.DB, httpez.Action[struct{}, []domain.Service]{
		Method: http.MethodGet,
		Path:   "/services",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) ([]domain.Service, error) {
			return d.Catalog.ListServices(c.Request.Context())
		},
	})

	httpez.RegisterAction[struct{}, []domain.ServiceCategory](ezPub, d.DB, httpez.Action[struct{}, []domain.ServiceCategory]{
		Method: http.MethodGet,
		Path:   "/services/categories",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) ([]domain.ServiceCategory, error) {
			return d.Catalog.ListCategories(c.Request.Context())
		},
	})
}
