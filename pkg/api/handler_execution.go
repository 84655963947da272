package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskdag/taskdag/pkg/models"
)

// executeDagHandler handles POST /api/v1/dags/:id/execute. The run starts
// in the background; the pending execution row comes back immediately.
func (s *Server) executeDagHandler(c *gin.Context) {
	execution, err := s.runner.Execute(c.Request.Context(), c.Param("id"), nil)
	if err != nil {
		s.abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, execution)
}

// resumeExecutionHandler handles POST /api/v1/executions/:id/resume.
// Only pending, suspended and failed executions can re-enter the loop.
func (s *Server) resumeExecutionHandler(c *gin.Context) {
	execution, err := s.runner.Resume(c.Request.Context(), c.Param("id"), nil)
	if err != nil {
		s.abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, execution)
}

// listExecutionsHandler handles GET /api/v1/executions.
func (s *Server) listExecutionsHandler(c *gin.Context) {
	filters := models.ExecutionFilters{
		DagID:  c.Query("dag_id"),
		Status: c.Query("status"),
		Limit:  intQuery(c, "limit"),
		Offset: intQuery(c, "offset"),
	}

	result, err := s.executions.ListExecutions(c.Request.Context(), filters)
	if err != nil {
		s.abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// getExecutionHandler handles GET /api/v1/executions/:id.
func (s *Server) getExecutionHandler(c *gin.Context) {
	execution, err := s.executions.GetExecution(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, execution)
}

// getExecutionStepsHandler handles GET /api/v1/executions/:id/steps,
// returning the execution with its sub-steps loaded in task-id order.
func (s *Server) getExecutionStepsHandler(c *gin.Context) {
	execution, err := s.executions.GetExecutionWithSubSteps(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, execution)
}

// deleteExecutionHandler handles DELETE /api/v1/executions/:id. Running
// and waiting executions are refused; stop them first.
func (s *Server) deleteExecutionHandler(c *gin.Context) {
	if err := s.executions.DeleteExecution(c.Request.Context(), c.Param("id")); err != nil {
		s.abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// stopExecutionHandler handles POST /api/v1/executions/:id/stop. The run
// observes the request at its next wave boundary and returns to pending.
func (s *Server) stopExecutionHandler(c *gin.Context) {
	executionID := c.Param("id")
	if _, err := s.executions.GetExecution(c.Request.Context(), executionID); err != nil {
		s.abortWithServiceError(c, err)
		return
	}

	request, err := s.stops.RequestStopForExecution(c.Request.Context(), executionID)
	if err != nil {
		s.abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, StopResponse{
		StopRequestID: request.ID,
		Status:        string(request.Status),
	})
}
