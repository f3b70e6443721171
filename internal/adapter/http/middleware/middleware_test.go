package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mediamind_portal/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type stubVerifier struct {
	tokens map[string]string
}

func (s stubVerifier) Verify(token string) (auth.ClientIdentity, error) {
	if id, ok := s.tokens[token]; ok {
		return auth.ClientIdentity{ClientID: id}, nil
	}
	return auth.ClientIdentity{}, auth.ErrUnauthenticated
}

func newSessionRouter() *gin.Engine {
	r := gin.New()
	r.Use(SessionAuth(stubVerifier{tokens: map[string]string{"good": "C1"}}, "client_token"))
	r.GET("/me", func(c *gin.Context) {
		c.String(http.StatusOK, ClientID(c))
	})
	return r
}

func TestSessionAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		newSessionRouter().ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"error":"Unauthorized"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "client_token", Value: "forged"})
		newSessionRouter().ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("token in wrong cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "admin_token", Value: "good"})
		newSessionRouter().ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "client_token", Value: "good"})
		newSessionRouter().ServeHTTP(w, req)

		if w.Code != http.StatusOK || w.Body.String() != "C1" {
			t.Fatalf("unexpected response %d %q", w.Code, w.Body.String())
		}
	})
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, RequestIDFrom(c)) })

	t.Run("propagates incoming id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(HeaderRequestID, "abc-123")
		r.ServeHTTP(w, req)

		if w.Body.String() != "abc-123" || w.Header().Get(HeaderRequestID) != "abc-123" {
			t.Fatalf("expected propagated id, got body=%q header=%q", w.Body.String(), w.Header().Get(HeaderRequestID))
		}
	})

	t.Run("generates id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		if len(w.Body.String()) != 36 {
			t.Fatalf("expected uuid, got %q", w.Body.String())
		}
	})
}

func TestLoggerAndRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	r := gin.New()
	r.Use(RequestID(), Logger(logger), Recovery(logger))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/boom", func(c *gin.Context) { panic(errors.New("boom")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "INTERNAL_ERROR") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	if logs.FilterMessage("[http] recovered from panic").Len() != 1 {
		t.Fatalf("expected panic to be logged")
	}
	if logs.FilterMessage("[http] request").Len() != 2 {
		t.Fatalf("expected 2 request lines, got %d", logs.FilterMessage("[http] request").Len())
	}
}
