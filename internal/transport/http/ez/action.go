package ez

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pooja-setu/internal/domain"
	resp "pooja-setu/internal/transport/http/response"
)

type EZ struct{ g *gin.RouterGroup }

func New(g *gin.RouterGroup) EZ { return EZ{g: g} }

// Binder selects how the input struct is populated.
type Binder string

const (
	BindJSON  Binder = "json"
	BindQuery Binder = "query"
	BindNone  Binder = "none"
)

// AErr is the action-level error carrying a business code.
type AErr struct {
	Code int
	Msg  string
	Err  error
}

func (e *AErr) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "action error"
}

func BadRequest(msg string) error   { return &AErr{Code: resp.CodeBadRequest, Msg: msg} }
func Unauthorized(msg string) error { return &AErr{Code: resp.CodeUnauthorized, Msg: msg} }
func Forbidden(msg string) error    { return &AErr{Code: resp.CodeForbidden, Msg: msg} }
func NotFound(msg string) error     { return &AErr{Code: resp.CodeNotFound, Msg: msg} }
func Conflict(msg string) error     { return &AErr{Code: resp.CodeConflict, Msg: msg} }
func Internal(msg string, err error) error {
	return &AErr{Code: resp.CodeServerError, Msg: msg, Err: err}
}

// CurrentUser returns the profile the auth gate resolved for this request.
func CurrentUser(c *gin.Context) *domain.User {
	if v, ok := c.Get("user"); ok {
		if u, ok := v.(*domain.User); ok {
			return u
		}
	}
	return nil
}

// Action describes one non-CRUD endpoint: I is the input, O the output.
type Action[I any, O any] struct {
	Method  string
	Path    string
	Binder  Binder
	Roles   []domain.Role // allow-list on the DB-resolved role; empty = any authenticated
	UseTx   bool
	Handler func(c *gin.Context, db *gorm.DB, in *I) (O, error)
}

func RegisterAction[I any, O any](e EZ, db *gorm.DB, a Action[I, O]) {
	h := func(c *gin.Context) {
		if len(a.Roles) > 0 {
			u := CurrentUser(c)
			if u == nil {
				c.JSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "unauthenticated"))
				return
			}
			allowed := false
			for _, r := range a.Roles {
				if u.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				c.JSON(http.StatusOK, resp.Error(resp.CodeForbidden, "forbidden"))
				return
			}
		}

		var in I
		var bindErr error
		switch a.Binder {
		case BindJSON:
			bindErr = c.ShouldBindJSON(&in)
		case BindQuery:
			bindErr = c.ShouldBindQuery(&in)
		}
		if bindErr != nil {
			c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, bindErr.Error()))
			return
		}

		run := func(tx *gorm.DB) (O, error) { return a.Handler(c, tx, &in) }
		var out O
		var err error
		if a.UseTx {
			err = db.WithContext(c).Transaction(func(tx *gorm.DB) error {
				o, e := run(tx)
				out = o
				return e
			})
		} else {
			out, err = run(db.WithContext(c))
		}

		if err != nil {
			c.JSON(http.StatusOK, ToResp(err))
			return
		}
		c.JSON(http.StatusOK, resp.OK(out))
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		e.g.GET(a.Path, h)
	case http.MethodPut:
		e.g.PUT(a.Path, h)
	case http.MethodDelete:
		e.g.DELETE(a.Path, h)
	default:
		e.g.POST(a.Path, h)
	}
}

// ToResp maps action and domain errors onto the envelope taxonomy.
func ToResp(err error) resp.Resp {
	var ae *AErr
	if errors.As(err, &ae) {
		return resp.Error(ae.Code, ae.Error())
	}
	switch {
	case domain.IsValidation(err):
		return resp.Error(resp.CodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return resp.Error(resp.CodeNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		return resp.Error(resp.CodeConflict, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		return resp.Error(resp.CodeForbidden, err.Error())
	}
	return resp.Error(resp.CodeServerError, err.Error())
}
