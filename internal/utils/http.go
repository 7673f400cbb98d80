package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/greatadamu/ledgerlink/internal/pkg/apperr"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Error   string `json:"error"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// AppErrorResponse maps a classified error to the matching HTTP response.
// Unclassified errors fall through to 500 with a generic message so raw
// driver or transport failures are never leaked to callers.
func AppErrorResponse(c echo.Context, err error) error {
	kind := apperr.KindOf(err)

	var statusCode int
	switch kind {
	case apperr.KindValidation:
		statusCode = http.StatusBadRequest
	case apperr.KindNotFound:
		statusCode = http.StatusNotFound
	case apperr.KindConflict:
		statusCode = http.StatusConflict
	case apperr.KindPrecondition:
		statusCode = http.StatusUnprocessableEntity
	case apperr.KindTimeout:
		statusCode = http.StatusGatewayTimeout
	case apperr.KindUnavailable:
		statusCode = http.StatusServiceUnavailable
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Success: false,
			Code:    string(apperr.KindInternal),
			Error:   "Internal server error",
		})
	}

	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Code:    string(kind),
		Error:   err.Error(),
	})
}
