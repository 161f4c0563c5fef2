package handlers

import (
	"net/http"
	"strings"

	"faturas/pkg"

	"github.com/gin-gonic/gin"
)

// UserIDHeader carries the authenticated user identity. Authentication
// itself happens upstream (API gateway); this service trusts the header.
const UserIDHeader = "X-User-ID"

var errMissingUserID = pkg.NewDomainErrorSimple("MISSING_USER", "Missing X-User-ID header", http.StatusUnauthorized)

func userIDFromRequest(c *gin.Context) (string, bool) {
	userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
	if userID == "" {
		c.JSON(errMissingUserID.HTTPStatus, errMissingUserID.ToHTTPError())
		return "", false
	}
	return userID, true
}
