package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tradenet/middleware"
	"tradenet/models"
)

// orgIDOrAbort returns the authenticated organization identifier, aborting
// with 401 when the auth middleware did not run.
func orgIDOrAbort(c *gin.Context) string {
	orgID := middleware.OrgID(c)
	if orgID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
	return orgID
}

// pagination reads the optional limit/offset query parameters.
func pagination(c *gin.Context) (limit, offset int64) {
	limit, _ = strconv.ParseInt(c.Query("limit"), 10, 64)
	offset, _ = strconv.ParseInt(c.Query("offset"), 10, 64)
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func profileUpdateFrom(legalName, email, address, webhookURL, fcmToken string) models.OrganizationProfileUpdate {
	return models.OrganizationProfileUpdate{
		LegalName:  legalName,
		Email:      email,
		Address:    address,
		WebhookURL: webhookURL,
		FCMToken:   fcmToken,
	}
}
