package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pooja-setu/internal/domain"
	"pooja-setu/internal/service"
	httpez "pooja-setu/internal/transport/http/ez"
)

func mountAdminActions(admin *gin.RouterGroup, d Deps) {
	ezAdmin := httpez.New(admin)

	// --- user roster ---
	type listUsersQ struct {
		Role      string `form:"role"`
		Community string `form:"community"`
		Language  string `form:"language"`
		Q         string `form:"q"`
		Offset    int    `form:"offset,default=0"`
		Limit     int    `form:"limit,default=50"`
	}
	type listUsersOut struct {
		Total int64         `json:"total"`
		Items []domain.User `json:"items"`
	}
	httpez.RegisterAction[listUsersQ, listUsersOut](ezAdmin, d.DB, httpez.Action[listUsersQ, listUsersOut]{
		Method: http.MethodGet,
		Path:   "/users",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, _ *gorm.DB, in *listUsersQ) (listUsersOut, error) {
			users, total, err := d.Profiles.List(domain.UserFilter{
				Role:      domain.Role(in.Role),
				Community: in.Community,
				Language:  in.Language,
				Query:     in.Q,
				Offset:    in.Offset,
				Limit:     in.Limit,
			})
			if err != nil {
				return listUsersOut{}, httpez.Internal("list users failed", err)
			}
			return listUsersOut{Total: total, Items: users}, nil
		},
	})

	// --- priest rating: enumerated label, direct overwrite ---
	type ratingIn struct {
		Rating string `json:"rating" binding:"required"`
	}
	httpez.RegisterAction[ratingIn, *domain.User](ezAdmin, d.DB, httpez.Action[ratingIn, *domain.User]{
		Method: http.MethodPut,
		Path:   "/users/:id/rating",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, _ *gorm.DB, in *ratingIn) (*domain.User, error) {
			return d.Profiles.SetRating(c.Param("id"), in.Rating)
		},
	})

	// --- catalog writes ---
	httpez.RegisterAction[service.CategoryInput, *domain.ServiceCategory](ezAdmin, d.DB, httpez.Action[service.CategoryInput, *domain.ServiceCategory]{
		Method: http.MethodPost,
		Path:   "/services/categories",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, _ *gorm.DB, in *service.CategoryInput) (*domain.ServiceCategory, error) {
			return d.Catalog.CreateCategory(c.Request.Context(), *in)
		},
	})
	httpez.RegisterAction[service.CategoryInput, *domain.ServiceCategory](ezAdmin, d.DB, httpez.Action[service.CategoryInput, *domain.ServiceCategory]{
		Method: http.MethodPut,
		Path:   "/services/categories/:id",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, _ *gorm.DB, in *service.CategoryInput) (*domain.ServiceCategory, error) {
			return d.Catalog.UpdateCategory(c.Request.Context(), c.Param("id"), *in)
		},
	})
	httpez.RegisterAction[struct{}, gin.H](ezAdmin, d.DB, httpez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/services/categories/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (gin.H, error) {
			if err := d.Catalog.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
				return nil, err
			}
			return gin.H{"id": c.Param("id")}, nil
		},
	})

	httpez.RegisterAction[service.ServiceInput, *domain.Service](ezAdmin, d.DB, httpez.Action[service.ServiceInput, *domain.Service]{
		Method: http.MethodPost,
		Path:   "/services",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, _ *gorm.DB, in *service.ServiceInput) (*domain.Service, error) {
			return d.Catalog.CreateService(c.Request.Context(), *in)
		},
	})
	httpez.RegisterAction[service.ServiceInput, *domain.Service](ezAdmin, d.DB, httpez.Action[service.ServiceInput, *domain.Service]{
		Method: http.MethodPut,
		Path:   "/services/:id",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, _ *gorm.DB, in *service.ServiceInput) (*domain.Service, error) {
			return d.Catalog.UpdateService(c.Request.Context(), c.Param("id"), *in)
		},
	})
	httpez.RegisterAction[struct{}, gin.H](ezAdmin, d.DB, httpez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/services/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (gin.H, error) {
			if err := d.Catalog.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
				return nil, err
			}
			return gin.H{"id": c.Param("id")}, nil
		},
	})

	// --- ritual roster and transitions ---
	httpez.RegisterAction[struct{}, []domain.RitualRequest](ezAdmin, d.DB, httpez.Action[struct{}, []domain.RitualRequest]{
		Method: http.MethodGet,
		Path:   "/rituals",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) ([]domain.RitualRequest, error) {
			return d.Rituals.ListAll()
		},
	})

	type assignIn struct {
		PriestID       string `json:"priestId" binding:"required"`
		GoogleMeetLink string `json:"googleMeetLink"`
	}
	httpez.RegisterAction[assignIn, *domain.RitualRequest](ezAdmin, d.DB, httpez.Action[assignIn, *domain.RitualRequest]{
		Method: http.MethodPut,
		Path:   "/rituals/:id/assign",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, _ *gorm.DB, in *assignIn) (*domain.RitualRequest, error) {
			return d.Rituals.Assign(httpez.CurrentUser(c), c.Param("id"), in.PriestID, in.GoogleMeetLink)
		},
	})
	httpez.RegisterAction[struct{}, *domain.RitualRequest](ezAdmin, d.DB, httpez.Action[struct{}, *domain.RitualRequest]{
		Method: http.MethodPut,
		Path:   "/rituals/:id/complete",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (*domain.RitualRequest, error) {
			return d.Rituals.Complete(httpez.CurrentUser(c), c.Param("id"))
		},
	})
	httpez.RegisterAction[struct{}, *domain.RitualRequest](ezAdmin, d.DB, httpez.Action[struct{}, *domain.RitualRequest]{
		Method: http.MethodPut,
		Path:   "/rituals/:id/cancel",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (*domain.RitualRequest, error) {
			return d.Rituals.Cancel(httpez.CurrentUser(c), c.Param("id"))
		},
	})
}
