package middleware

import (
	"net/http"

	"mediamind_portal/internal/infrastructure/auth"
	"mediamind_portal/pkg"

	"github.com/gin-gonic/gin"
)

const clientIDKey = "mediamind.client_id"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized)

// SessionVerifier resolves a session token to the client it was issued for.
type SessionVerifier interface {
	Verify(token string) (auth.ClientIdentity, error)
}

// SessionAuth rejects requests without a valid session cookie and stores the
// verified client id on the context. Handlers read it with ClientID.
func SessionAuth(verifier SessionVerifier, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		identity, err := verifier.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(clientIDKey, identity.ClientID)
		c.Next()
	}
}

// ClientID returns the id set by SessionAuth, or "" on unauthenticated routes.
func ClientID(c *gin.Context) string {
	return c.GetString(clientIDKey)
}
