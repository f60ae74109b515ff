package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradenet/services/identity"
	"tradenet/utils"
)

// AuthHandler serves the identity login and registration endpoints.
type AuthHandler struct {
	Svc identity.IdentityService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc identity.IdentityService) *AuthHandler {
	return &AuthHandler{Svc: svc}
}

// LoginHandler drives the two-step OTP login. Without an OTP the response is
// {"message":"OTP sent"}; with a valid OTP it is {"token":...}.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Identifier string `json:"identifier" binding:"required"`
		OTP        string `json:"otp,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "identifier required", err.Error())
		return
	}

	result, err := h.Svc.Login(c.Request.Context(), req.Identifier, req.OTP)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if result.OTPSent {
		c.JSON(http.StatusOK, gin.H{"message": "OTP sent"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": result.Token})
}

// RegisterHandler registers an organization explicitly and returns a custom
// token.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req identity.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid registration payload", err.Error())
		return
	}

	token, err := h.Svc.Register(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customToken": token})
}

// UpdateProfileHandler applies contact and delivery-channel changes for the
// authenticated organization.
func (h *AuthHandler) UpdateProfileHandler(c *gin.Context) {
	orgID := orgIDOrAbort(c)
	if orgID == "" {
		return
	}

	var req struct {
		LegalName  string `json:"legal_name,omitempty"`
		Email      string `json:"email,omitempty"`
		Address    string `json:"address,omitempty"`
		WebhookURL string `json:"webhook_url,omitempty"`
		FCMToken   string `json:"fcm_token,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid profile payload", err.Error())
		return
	}

	update := profileUpdateFrom(req.LegalName, req.Email, req.Address, req.WebhookURL, req.FCMToken)
	if err := h.Svc.UpdateProfile(c.Request.Context(), orgID, update); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profile updated"})
}
