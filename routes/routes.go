package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tradenet/handlers"
	"tradenet/middleware"
	"tradenet/utils"
)

// RegisterAuthRoutes registers the public identity endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.LoginHandler)
		api.POST("/register", hb.RegisterHandler)
	}
}

// RegisterTradeRoutes registers the protected resource endpoints. Each
// resource dispatches on the action query param, so all methods route to the
// same handler.
func RegisterTradeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(hb.Verifier, hb.AuthCache))
	{
		api.Any("/invoice_requests", hb.InvoiceRequestsHandler)
		api.Any("/ledger", hb.LedgerHandler)
		api.Any("/network", hb.NetworkHandler)
		api.Any("/vendors", hb.VendorsHandler)
		api.Any("/items", hb.ItemsHandler)
		api.POST("/profile", hb.UpdateProfileHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterTradeRoutes(r, hb)
	RegisterHealthRoute(r)
}
