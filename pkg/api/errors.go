package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskdag/taskdag/pkg/services"
)

// ErrorResponse is the error envelope every failed request returns.
type ErrorResponse struct {
	Error string `json:"error"`
}

// abortWithServiceError maps service-layer errors to HTTP responses in
// one place. Unexpected errors are logged and masked as 500.
func (s *Server) abortWithServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	switch {
	case errors.As(err, &validErr):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, ErrorResponse{Error: validErr.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Error: "resource not found"})
	case errors.Is(err, services.ErrInvalidInput):
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrAlreadyExists):
		c.AbortWithStatusJSON(http.StatusConflict, ErrorResponse{Error: "resource already exists"})
	default:
		s.logger.Error("Unexpected service error", "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
