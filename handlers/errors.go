package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tradenet/services/identity"
	"tradenet/services/trade"
	"tradenet/services/vendor"
	"tradenet/utils"
)

// respondServiceError maps service errors onto the error envelope and the
// status taxonomy: validation 400, auth 401, not-found 404, everything else a
// generic 500 with the detail kept server-side.
func respondServiceError(c *gin.Context, err error) {
	var identityVal identity.ValidationError
	var tradeVal trade.ValidationError
	var vendorVal vendor.ValidationError

	switch {
	case errors.As(err, &identityVal):
		utils.JSONError(c, http.StatusBadRequest, identityVal.Msg, identityVal.Details)
	case errors.As(err, &tradeVal):
		utils.JSONError(c, http.StatusBadRequest, tradeVal.Msg, tradeVal.Details)
	case errors.As(err, &vendorVal):
		utils.JSONError(c, http.StatusBadRequest, vendorVal.Msg, vendorVal.Details)
	case errors.Is(err, identity.ErrInvalidOTP), errors.Is(err, identity.ErrOTPExpired):
		utils.JSONError(c, http.StatusUnauthorized, err.Error(), nil)
	case errors.Is(err, identity.ErrIdentityNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error(), nil)
	default:
		getLogger(c).Error("internal error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "Internal server error"})
	}
}

// methodNotAllowed answers unsupported method/action combinations on
// action-dispatched resources.
func methodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, utils.ErrorResponse{Error: "Method not allowed or missing action"})
}
