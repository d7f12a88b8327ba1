package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"quizhub/config"
	"quizhub/internal/model"
)

type stubUserRepo struct {
	users map[string]*model.User
}

func (s *stubUserRepo) Create(user *model.User) error { return nil }

func (s *stubUserRepo) FindByUsername(username string) (*model.User, error) {
	if u, ok := s.users[username]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) FindByEmail(email string) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) FindAll() ([]model.User, error) { return nil, nil }

func (s *stubUserRepo) UpdateRole(username, role string) (int64, error) { return 0, nil }

func (s *stubUserRepo) DeleteByUsername(username string) (int64, error) { return 0, nil }

func newGateRouter(t *testing.T) (*gin.Engine, *TokenIssuer, *stubUserRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	issuer := NewTokenIssuer(&config.Config{
		Auth: config.Auth{TokenSecret: "test-secret", TokenTTL: time.Hour},
	})
	repo := &stubUserRepo{users: map[string]*model.User{
		"root":  {Username: "root", Role: model.RoleAdmin},
		"alice": {Username: "alice", Role: model.RoleUser},
	}}

	router := gin.New()
	admin := router.Group("/admin", RequireAdmin(issuer, repo))
	admin.GET("/ping", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"caller": ctx.GetString(CallerKey)})
	})
	return router, issuer, repo
}

func gateRequest(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequireAdminMissingToken(t *testing.T) {
	router, _, _ := newGateRouter(t)
	if rec := gateRequest(router, ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token: status = %d, want 401", rec.Code)
	}

	// Wrong scheme counts as missing.
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Basic abc")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("basic auth: status = %d, want 401", rec.Code)
	}
}

func TestRequireAdminInvalidToken(t *testing.T) {
	router, _, _ := newGateRouter(t)
	if rec := gateRequest(router, "not.a.token"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: status = %d, want 401", rec.Code)
	}
}

func TestRequireAdminNonAdminForbidden(t *testing.T) {
	router, issuer, _ := newGateRouter(t)
	token, err := issuer.Mint("alice", model.RoleUser)
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}
	if rec := gateRequest(router, token); rec.Code != http.StatusForbidden {
		t.Fatalf("non-admin: status = %d, want 403", rec.Code)
	}
}

func TestRequireAdminDemotedAdminForbidden(t *testing.T) {
	router, issuer, repo := newGateRouter(t)
	token, err := issuer.Mint("root", model.RoleAdmin)
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	if rec := gateRequest(router, token); rec.Code != http.StatusOK {
		t.Fatalf("admin: status = %d, want 200", rec.Code)
	}

	// Demote after the token was minted; the stale role claim must not win.
	repo.users["root"].Role = model.RoleUser
	if rec := gateRequest(router, token); rec.Code != http.StatusForbidden {
		t.Fatalf("demoted admin: status = %d, want 403", rec.Code)
	}
}
