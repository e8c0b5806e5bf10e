package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"steamboost/internal/models"
)

func newEngine(s models.Session, gate gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if s.IsAuthenticated() {
			c.Set(currentUserKey, s)
		}
		c.Next()
	})
	r.GET("/", gate, func(c *gin.Context) {
		c.String(http.StatusOK, CurrentSession(c).Username)
	})
	return r
}

func serve(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func TestRequireAuth(t *testing.T) {
	w := serve(newEngine(models.Session{}, RequireAuth()))
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
		t.Fatalf("anonymous: code=%d location=%q", w.Code, w.Header().Get("Location"))
	}

	w = serve(newEngine(models.Session{Username: "user1", Role: models.RoleUser}, RequireAuth()))
	if w.Code != http.StatusOK || w.Body.String() != "user1" {
		t.Fatalf("authenticated: code=%d body=%q", w.Code, w.Body.String())
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name    string
		session models.Session
		code    int
	}{
		{"anonymous", models.Session{}, http.StatusFound},
		{"user", models.Session{Username: "user1", Role: models.RoleUser}, http.StatusForbidden},
		{"admin", models.Session{Username: "admin", Role: models.RoleAdmin}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(newEngine(tt.session, RequireRole(models.RoleAdmin)))
			if w.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, w.Code)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("RequestID")) })

	w := serve(r)
	id := w.Header().Get(RequestIDHeader)
	if id == "" || w.Body.String() != id {
		t.Fatalf("generated id not propagated: header=%q body=%q", id, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "client-id")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get(RequestIDHeader) != "client-id" {
		t.Fatalf("client id not kept: %q", w.Header().Get(RequestIDHeader))
	}
}
