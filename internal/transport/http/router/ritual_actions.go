package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pooja-setu/internal/domain"
	"pooja-setu/internal/service"
	httpez "pooja-setu/internal/transport/http/ez"
)

func mountRitualActions(authed *gin.RouterGroup, d Deps) {
	ezAuth := httpez.New(authed)

	httpez.RegisterAction[service.CreateRitualInput, *domain.RitualRequest](ezAuth, d.DB, httpez.Action[service.CreateRitualInput, *domain.RitualRequest]{
		Method: http.MethodPost,
		Path:   "/rituals",
		Binder: httpez.BindJSON,
		Roles:  []domain.Role{domain.RoleSeeker},
		Handler: func(c *gin.Context, _ *gorm.DB, in *service.CreateRitualInput) (*domain.RitualRequest, error) {
			return d.Rituals.Create(httpez.CurrentUser(c), *in)
		},
	})

	httpez.RegisterAction[struct{}, []domain.RitualRequest](ezAuth, d.DB, httpez.Action[struct{}, []domain.RitualRequest]{
		Method: http.MethodGet,
		Path:   "/rituals/my-requests",
		Binder: httpez.BindNone,
		Roles:  []domain.Role{domain.RoleSeeker},
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) ([]domain.RitualRequest, error) {
			return d.Rituals.ListMine(httpez.CurrentUser(c).ID)
		},
	})

	httpez.RegisterAction[struct{}, []domain.RitualRequest](ezAuth, d.DB, httpez.Action[struct{}, []domain.RitualRequest]{
		Method: http.MethodGet,
		Path:   "/rituals/available",
		Binder: httpez.BindNone,
		Roles:  []domain.Role{domain.RolePriest},
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) ([]domain.RitualRequest, error) {
			return d.Rituals.ListAvailable()
		},
	})

	httpez.RegisterAction[struct{}, []domain.RitualRequest](ezAuth, d.DB, httpez.Action[struct{}, []domain.RitualRequest]{
		Method: http.MethodGet,
		Path:   "/rituals/assigned",
		Binder: httpez.BindNone,
		Roles:  []domain.Role{domain.RolePriest},
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) ([]domain.RitualRequest, error) {
			return d.Rituals.ListAssignments(httpez.CurrentUser(c).ID)
		},
	})

	// A priest "expresses interest" by assigning themselves; the body is
	// ignored for priests, so a stale priestId cannot reroute the request.
	httpez.RegisterAction[struct{}, *domain.RitualRequest](ezAuth, d.DB, httpez.Action[struct{}, *domain.RitualRequest]{
		Method: http.MethodPut,
		Path:   "/rituals/:id/assign",
		Binder: httpez.BindNone,
		Roles:  []domain.Role{domain.RolePriest},
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (*domain.RitualRequest, error) {
			return d.Rituals.Assign(httpez.CurrentUser(c), c.Param("id"), "", "")
		},
	})

	httpez.RegisterAction[struct{}, *domain.RitualRequest](ezAuth, d.DB, httpez.Action[struct{}, *domain.RitualRequest]{
		Method: http.MethodPut,
		Path:   "/rituals/:id/complete",
		Binder: httpez.BindNone,
		Roles:  []domain.Role{domain.RolePriest},
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (*domain.RitualRequest, error) {
			return d.Rituals.Complete(httpez.CurrentUser(c), c.Param("id"))
		},
	})

	httpez.RegisterAction[struct{}, *domain.RitualRequest](ezAuth, d.DB, httpez.Action[struct{}, *domain.RitualRequest]{
		Method: http.MethodPut,
		Path:   "/rituals/:id/cancel",
		Binder: httpez.BindNone,
		Roles:  []domain.Role{domain.RoleSeeker},
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (*domain.RitualRequest, error) {
			return d.Rituals.Cancel(httpez.CurrentUser(c), c.Param("id"))
		},
	})
}
