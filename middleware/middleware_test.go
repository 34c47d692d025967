package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded chain", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, "127.0.0.1:1234", "203.0.113.7"},
		{"real ip", map[string]string{"X-Real-IP": "198.51.100.2"}, "127.0.0.1:1234", "198.51.100.2"},
		{"garbage header ignored", map[string]string{"X-Forwarded-For": "not-an-ip"}, "192.0.2.9:80", "192.0.2.9"},
		{"remote addr", nil, "192.0.2.10:5555", "192.0.2.10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			c.Request = req
			if got := getClientIP(c); got != tt.want {
				t.Errorf("getClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(1))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	var limited int
	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.1:1000"
		r.ServeHTTP(w, req)
		if w.Code == http.StatusTooManyRequests {
			limited++
		}
	}
	// Burst is 5, so the rest of the requests within the minute are rejected.
	if limited != 5 {
		t.Errorf("limited = %d, want 5", limited)
	}
}

func TestRequestLogger(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	r.GET("/", func(c *gin.Context) {
		if _, ok := c.Get("logger"); !ok {
			t.Error("logger not set on context")
		}
		c.String(http.StatusOK, c.GetString("requestId"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	id := w.Header().Get(requestIDHeader)
	if id == "" || id != w.Body.String() {
		t.Errorf("request id header %q does not match context %q", id, w.Body.String())
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "8d3f3c1e-2a4b-4c55-9a1e-3b8c5f0e7d21")
	r.ServeHTTP(w, req)
	if got := w.Header().Get(requestIDHeader); got != "8d3f3c1e-2a4b-4c55-9a1e-3b8c5f0e7d21" {
		t.Errorf("incoming request id not kept, got %q", got)
	}
}
