package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"tradenet/middleware"
)

// HandlerBundle groups the route handlers and the auth dependencies the
// route registration needs.
type HandlerBundle struct {
	Verifier  middleware.TokenVerifier
	AuthCache *redis.Client

	// Identity endpoints.
	LoginHandler         gin.HandlerFunc
	RegisterHandler      gin.HandlerFunc
	UpdateProfileHandler gin.HandlerFunc

	// Trade endpoints.
	InvoiceRequestsHandler gin.HandlerFunc
	LedgerHandler          gin.HandlerFunc
	NetworkHandler         gin.HandlerFunc

	// Vendor and inventory endpoints.
	VendorsHandler gin.HandlerFunc
	ItemsHandler   gin.HandlerFunc
}
