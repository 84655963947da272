package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/taskdag/taskdag/pkg/database"
	"github.com/taskdag/taskdag/pkg/services"
	"github.com/taskdag/taskdag/pkg/version"
)

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version"`
	Database *database.HealthStatus `json:"database"`
}

// SystemWarningsResponse is returned by GET /api/v1/system/warnings.
type SystemWarningsResponse struct {
	Warnings []*services.SystemWarning `json:"warnings"`
}

// healthzHandler handles GET /healthz. Only the database is checked:
// LLM providers are external dependencies whose outages should not make
// an orchestrator restart this process.
func (s *Server) healthzHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.dbClient.DB())
	status := "healthy"
	httpStatus := http.StatusOK
	if err != nil {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, HealthResponse{
		Status:   status,
		Version:  version.GitCommit,
		Database: dbHealth,
	})
}

// versionHandler handles GET /api/v1/version.
func (s *Server) versionHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"app":     version.AppName,
		"version": version.GitCommit,
	})
}

// systemWarningsHandler handles GET /api/v1/system/warnings.
func (s *Server) systemWarningsHandler(c *gin.Context) {
	response := SystemWarningsResponse{Warnings: []*services.SystemWarning{}}
	if s.warnings != nil {
		response.Warnings = append(response.Warnings, s.warnings.GetWarnings()...)
	}
	c.JSON(http.StatusOK, response)
}
