package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/taskdag/taskdag/pkg/config"
	"github.com/taskdag/taskdag/pkg/models"
)

// PlanGoalRequest is the body of POST /api/v1/dags.
type PlanGoalRequest struct {
	GoalText       string   `json:"goal_text" binding:"required"`
	AgentName      string   `json:"agent_name,omitempty"`
	Provider       string   `json:"provider,omitempty"`
	Model          string   `json:"model,omitempty"`
	Temperature    *float32 `json:"temperature,omitempty"`
	MaxTokens      *int     `json:"max_tokens,omitempty"`
	Seed           *int     `json:"seed,omitempty"`
	CronSchedule   string   `json:"cron_schedule,omitempty"`
	ScheduleActive bool     `json:"schedule_active,omitempty"`
	Timezone       string   `json:"timezone,omitempty"`
}

// ClarifyRequest is the body of POST /api/v1/dags/:id/clarify.
type ClarifyRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// StopResponse is returned by the stop endpoints.
type StopResponse struct {
	StopRequestID string `json:"stop_request_id"`
	Status        string `json:"status"`
}

// createDagHandler handles POST /api/v1/dags. It plans the goal
// synchronously and returns the tagged outcome: 201 for a validated plan,
// 200 for a clarification question, 422 for a plan the validator refused,
// 409 when a stop request aborted planning.
func (s *Server) createDagHandler(c *gin.Context) {
	var req PlanGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if req.AgentName == "" {
		req.AgentName = config.BuiltinPlannerAgentName
	}

	result, err := s.planner.CreateFromGoal(c.Request.Context(), models.PlanningRequest{
		GoalText:       req.GoalText,
		AgentName:      req.AgentName,
		Provider:       req.Provider,
		Model:          req.Model,
		Temperature:    req.Temperature,
		MaxTokens:      req.MaxTokens,
		Seed:           req.Seed,
		CronSchedule:   req.CronSchedule,
		ScheduleActive: req.ScheduleActive,
		Timezone:       req.Timezone,
	})
	if err != nil {
		s.abortWithServiceError(c, err)
		return
	}

	c.JSON(planningStatusCode(result.Status, http.StatusCreated), result)
}

// clarifyDagHandler handles POST /api/v1/dags/:id/clarify. The answer
// re-enters planning; the DAG keeps its id across the round trip.
func (s *Server) clarifyDagHandler(c *gin.Context) {
	var req ClarifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := s.planner.ResumeFromClarification(c.Request.Context(), c.Param("id"), req.Answer)
	if err != nil {
		s.abortWithServiceError(c, err)
		return
	}

	c.JSON(planningStatusCode(result.Status, http.StatusOK), result)
}

// planningStatusCode maps a planning outcome onto an HTTP status.
func planningStatusCode(status models.PlanningStatus, success int) int {
	switch status {
	case models.PlanningStatusSuccess:
		return success
	case models.PlanningStatusClarificationRequired:
		return http.StatusOK
	case models.PlanningStatusValidationError:
		return http.StatusUnprocessableEntity
	default: // stopped before persistence
		return http.StatusConflict
	}
}

// listDagsHandler handles GET /api/v1/dags.
func (s *Server) listDagsHandler(c *gin.Context) {
	filters := models.DagFilters{
		Status:    c.Query("status"),
		AgentName: c.Query("agent_name"),
		Limit:     intQuery(c, "limit"),
		Offset:    intQuery(c, "offset"),
	}

	result, err := s.dags.ListDags(c.Request.Context(), filters)
	if err != nil {
		s.abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// getDagHandler handles GET /api/v1/dags/:id.
func (s *Server) getDagHandler(c *gin.Context) {
	row, err := s.dags.GetDag(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// updateDagHandler handles PATCH /api/v1/dags/:id. Title and schedule are
// the only mutable fields; a new cron expression is validated first.
func (s *Server) updateDagHandler(c *gin.Context) {
	var req models.UpdateDagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	row, err := s.planner.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		s.abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// deleteDagHandler handles DELETE /api/v1/dags/:id. Refused while
// executions still reference the DAG.
func (s *Server) deleteDagHandler(c *gin.Context) {
	if err := s.planner.SafeDelete(c.Request.Context(), c.Param("id")); err != nil {
		s.abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// scheduledDagsHandler handles GET /api/v1/dags/scheduled.
func (s *Server) scheduledDagsHandler(c *gin.Context) {
	rows, err := s.planner.ListScheduled(c.Request.Context())
	if err != nil {
		s.abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dags": rows})
}

// stopDagHandler handles POST /api/v1/dags/:id/stop. Re-requesting while
// a stop is already open returns the existing request. The dag id is not
// required to exist yet: a caller that pinned the id up front can stop a
// planning round that has not persisted its row.
func (s *Server) stopDagHandler(c *gin.Context) {
	request, err := s.stops.RequestStopForDag(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, StopResponse{
		StopRequestID: request.ID,
		Status:        string(request.Status),
	})
}

// intQuery parses an integer query parameter, zero when absent or bad.
func intQuery(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return v
}
