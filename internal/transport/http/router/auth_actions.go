package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pooja-setu/internal/core/auth"
	"pooja-setu/internal/domain"
	"pooja-setu/internal/service"
	httpez "pooja-setu/internal/transport/http/ez"
)

func mountAuthActions(authed *gin.RouterGroup, d Deps) {
	ezAuth := httpez.New(authed)

	// /auth/me: first contact creates the profile as unassigned; after that
	// it is a plain profile read.
	httpez.RegisterAction[struct{}, *domain.User](ezAuth, d.DB, httpez.Action[struct{}, *domain.User]{
		Method: http.MethodGet,
		Path:   "/auth/me",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (*domain.User, error) {
			claims := mustClaims(c)
			u, created, err := d.Profiles.Sync(claims.Subject, claims.Email, claims.Name)
			if err != nil {
				return nil, httpez.Internal("profile sync failed", err)
			}
			if created {
				c.Set("user", u)
			}
			return u, nil
		},
	})

	// /auth/profile: onboarding role selection and later self-edits share
	// this partial update.
	httpez.RegisterAction[service.ProfileUpdate, *domain.User](ezAuth, d.DB, httpez.Action[service.ProfileUpdate, *domain.User]{
		Method: http.MethodPut,
		Path:   "/auth/profile",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, _ *gorm.DB, in *service.ProfileUpdate) (*domain.User, error) {
			u := httpez.CurrentUser(c)
			if u == nil {
				return nil, httpez.Unauthorized("profile not synced yet")
			}
			return d.Profiles.Update(u, *in)
		},
	})
}

func mustClaims(c *gin.Context) *auth.Claims {
	v, _ := c.Get("claims")
	claims, _ := v.(*auth.Claims)
	return claims
}
