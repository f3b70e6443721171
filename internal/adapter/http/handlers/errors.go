package handlers

import (
	"errors"
	"net/http"

	"mediamind_portal/internal/usecase"
	"mediamind_portal/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

func mapInquiryError(err error) *pkg.AppError {
	var upstream *usecase.UpstreamError
	switch {
	case errors.Is(err, usecase.ErrInquiryNotFound):
		return pkg.NewDomainErrorSimple("INQUIRY_NOT_FOUND", "Inquiry not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Cannot cancel completed or already cancelled inquiry", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "Inquiry was changed by someone else, please reload and try again", http.StatusConflict)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid payment method", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingTransactionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Transaction ID is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyFile):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "No file provided", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotAnImage):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Only image files are allowed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFileTooLarge):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "File size must be less than 5MB", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidInquiryInput):
		return errInvalidRequest
	case errors.As(err, &upstream):
		return pkg.NewDomainError("UPSTREAM_FAILURE", upstream.Message, err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// respondError writes the mapped error. Server-side failures are logged with
// their cause; the client only ever sees the safe message.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	appErr := mapInquiryError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Error("[http][handler] request failed",
			zap.String("code", appErr.Code),
			zap.String("route", c.FullPath()),
			zap.Error(err),
		)
		_ = c.Error(err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
