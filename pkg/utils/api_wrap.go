package utils

import (
	"errors"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
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

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid or missing input")
	case errors.Is(err, ErrUnknownSelection):
		RespondError(c, http.StatusBadRequest, "Selected option was not among the presented results")
	case errors.Is(err, ErrSelectionNotAllowed):
		RespondError(c, http.StatusConflict, "Selection is not allowed at this point of the conversation")
	case errors.Is(err, ErrItineraryNotReady):
		RespondError(c, http.StatusConflict, "Trip plan is not finalized yet")
	case errors.Is(err, ErrBookingNotFound):
		RespondError(c, http.StatusNotFound, "Booking not found")
	case errors.Is(err, ErrSearchUnavailable):
		RespondError(c, http.StatusBadGateway, "Search provider is temporarily unavailable, please retry")
	case errors.Is(err, ErrPaymentProvider):
		RespondError(c, http.StatusBadGateway, "Payment provider is temporarily unavailable, please retry")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
