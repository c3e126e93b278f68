package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps sentinel service errors onto HTTP responses.
// Every handler funnels through here so a given error renders the same way
// on every route.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrPoorQualityInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrLoginRequired):
		RespondError(c, http.StatusUnauthorized, "Please sign in to continue")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrInvalidResetToken):
		RespondError(c, http.StatusUnauthorized, "Invalid or expired reset token")
	case errors.Is(err, ErrPremiumRequired):
		RespondError(c, http.StatusPaymentRequired, "This feature requires CultureCompass Pro")
	case errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrCountryNotFound),
		errors.Is(err, ErrPhraseNotFound),
		errors.Is(err, ErrTipNotFound),
		errors.Is(err, ErrPlanNotFound),
		errors.Is(err, ErrBookmarkNotFound),
		errors.Is(err, RecordNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrEmailAlreadyExists),
		errors.Is(err, ErrBookmarkExists),
		errors.Is(err, ErrFavoriteExists),
		errors.Is(err, ErrAlreadyUpvoted),
		errors.Is(err, ErrTrialAlreadyStarted),
		errors.Is(err, ErrTrialAlreadyUsed):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrUnexpectedBehaviorOfAI):
		RespondError(c, http.StatusBadGateway, "The assistant is unavailable right now")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
