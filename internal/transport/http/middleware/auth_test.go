package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"pooja-setu/internal/core/auth"
	"pooja-setu/internal/domain"
)

type stubUsers struct {
	byIdentity map[string]*domain.User
}

func (s *stubUsers) Create(*domain.User) error                  { return nil }
func (s *stubUsers) FindByID(string) (*domain.User, error)      { return nil, nil }
func (s *stubUsers) FindByEmail(string) (*domain.User, error)   { return nil, nil }
func (s *stubUsers) Updates(string, map[string]any) error       { return nil }
func (s *stubUsers) List(domain.UserFilter) ([]domain.User, int64, error) {
	return nil, 0, nil
}
func (s *stubUsers) FindByIdentityID(id string) (*domain.User, error) {
	return s.byIdentity[id], nil
}

func gateEngine(j *auth.JWTer, users domain.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/admin")
	g.Use(Authenticate(j, users), RequireRoles(domain.RoleAdmin))
	g.GET("/ping", func(c *gin.Context) {
		u, _ := c.Get("user")
		c.JSON(http.StatusOK, gin.H{"code": 0, "id": u.(*domain.User).ID})
	})
	return r
}

func envelopeCode(t *testing.T, body []byte) int {
	t.Helper()
	var out struct {
		Code int `json:"code"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("bad envelope: %v (%s)", err, body)
	}
	return out.Code
}

func TestGateRejectsMissingToken(t *testing.T) {
	j := &auth.JWTer{Secret: []byte("s"), Issuer: "gw", TTL: time.Minute}
	r := gateEngine(j, &stubUsers{byIdentity: map[string]*domain.User{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	r.ServeHTTP(w, req)

	if code := envelopeCode(t, w.Body.Bytes()); code != 401 {
		t.Fatalf("code = %d, want 401", code)
	}
}

func TestGateRejectsBadSignature(t *testing.T) {
	j := &auth.JWTer{Secret: []byte("s"), Issuer: "gw", TTL: time.Minute}
	forger := &auth.JWTer{Secret: []byte("forged"), Issuer: "gw", TTL: time.Minute}
	r := gateEngine(j, &stubUsers{byIdentity: map[string]*domain.User{}})

	tok, _ := forger.Issue("idp_1", "a@b.c", "A")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	if code := envelopeCode(t, w.Body.Bytes()); code != 401 {
		t.Fatalf("code = %d, want 401", code)
	}
}

func TestGateRejectsInsufficientRole(t *testing.T) {
	j := &auth.JWTer{Secret: []byte("s"), Issuer: "gw", TTL: time.Minute}
	users := &stubUsers{byIdentity: map[string]*domain.User{
		"idp_1": {ID: "u1", IdentityID: "idp_1", Role: domain.RoleSeeker},
	}}
	r := gateEngine(j, users)

	tok, _ := j.Issue("idp_1", "a@b.c", "A")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	if code := envelopeCode(t, w.Body.Bytes()); code != 403 {
		t.Fatalf("code = %d, want 403", code)
	}
}

func TestGatePassesAdminThrough(t *testing.T) {
	j := &auth.JWTer{Secret: []byte("s"), Issuer: "gw", TTL: time.Minute}
	users := &stubUsers{byIdentity: map[string]*domain.User{
		"idp_1": {ID: "u1", IdentityID: "idp_1", Role: domain.RoleAdmin},
	}}
	r := gateEngine(j, users)

	tok, _ := j.Issue("idp_1", "a@b.c", "A")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	var out struct {
		Code int    `json:"code"`
		ID   string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Code != 0 || out.ID != "u1" {
		t.Fatalf("got %+v", out)
	}
}

// The token role is irrelevant even if a client forges claims: the role
// always comes from the profile row.
func TestGateIgnoresClientAssertedRole(t *testing.T) {
	j := &auth.JWTer{Secret: []byte("s"), Issuer: "gw", TTL: time.Minute}
	users := &stubUsers{byIdentity: map[string]*domain.User{}} // no profile row
	r := gateEngine(j, users)

	tok, _ := j.Issue("idp_unknown", "x@y.z", "X")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	if code := envelopeCode(t, w.Body.Bytes()); code != 401 {
		t.Fatalf("valid token without profile: code = %d, want 401", code)
	}
}
