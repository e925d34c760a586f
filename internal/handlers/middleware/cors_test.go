package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(CORS("http://localhost:3000, https://threaddate.com"))
	router.GET("/brands", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("ecoa origem permitida", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/brands", nil)
		req.Header.Set("Origin", "https://threaddate.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://threaddate.com" {
			t.Errorf("esperava origem ecoada, obteve '%s'", got)
		}
	})

	t.Run("recusa origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/brands", nil)
		req.Header.Set("Origin", "https://evil.example")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("não esperava header CORS, obteve '%s'", got)
		}
	})

	t.Run("responde preflight", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/brands", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", "POST")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("esperava 204, obteve %d", w.Code)
		}
	})
}

func TestOriginChecker(t *testing.T) {
	check := OriginChecker("http://localhost:3000, https://threaddate.com")

	tests := []struct {
		name   string
		origin string
		want   bool
	}{
		{"origem listada", "https://threaddate.com", true},
		{"origem desconhecida", "https://evil.example", false},
		{"sem origem", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/v1/ws/tags/1", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if got := check(req); got != tt.want {
				t.Errorf("esperava %v, obteve %v", tt.want, got)
			}
		})
	}

	t.Run("curinga aceita qualquer origem", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Origin", "https://anything.example")
		if !OriginChecker("*")(req) {
			t.Error("esperava origem aceita")
		}
	})
}
