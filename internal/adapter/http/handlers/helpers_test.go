package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"

	"mediamind_portal/internal/adapter/http/middleware"
	"mediamind_portal/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
)

const testCookie = "client_token"

type stubVerifier map[string]string

func (s stubVerifier) Verify(token string) (auth.ClientIdentity, error) {
	if id, ok := s[token]; ok {
		return auth.ClientIdentity{ClientID: id}, nil
	}
	return auth.ClientIdentity{}, auth.ErrUnauthenticated
}

// newAuthedRouter returns a router whose routes require a session cookie.
// "tok-C1" and "tok-C2" authenticate as clients C1 and C2.
func newAuthedRouter() (*gin.Engine, *gin.RouterGroup) {
	r := gin.New()
	g := r.Group("/v1", middleware.SessionAuth(stubVerifier{"tok-C1": "C1", "tok-C2": "C2"}, testCookie))
	return r, g
}

func doRequest(r http.Handler, method, path, token string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
