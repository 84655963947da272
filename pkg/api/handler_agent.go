package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskdag/taskdag/pkg/models"
)

// listAgentsHandler handles GET /api/v1/agents. Optional filters:
// ?name=X and ?active_only=true.
func (s *Server) listAgentsHandler(c *gin.Context) {
	filters := models.AgentFilters{
		Name:       c.Query("name"),
		ActiveOnly: c.Query("active_only") == "true",
	}

	agents, err := s.agents.ListAgents(c.Request.Context(), filters)
	if err != nil {
		s.abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"agents": agents})
}

// createAgentHandler handles POST /api/v1/agents. The store assigns the
// version number; Activate flips the new version live in the same call.
func (s *Server) createAgentHandler(c *gin.Context) {
	var req models.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	agent, err := s.agents.CreateAgent(c.Request.Context(), req)
	if err != nil {
		s.abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, agent)
}

// getAgentHandler handles GET /api/v1/agents/:id.
func (s *Server) getAgentHandler(c *gin.Context) {
	agent, err := s.agents.GetAgent(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, agent)
}

// updateAgentHandler handles PATCH /api/v1/agents/:id.
func (s *Server) updateAgentHandler(c *gin.Context) {
	var req models.UpdateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	agent, err := s.agents.UpdateAgent(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		s.abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, agent)
}

// activateAgentHandler handles POST /api/v1/agents/:id/activate. The
// previously active version of the same name goes inactive in the same
// transaction.
func (s *Server) activateAgentHandler(c *gin.Context) {
	agent, err := s.agents.ActivateAgent(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, agent)
}

// deleteAgentHandler handles DELETE /api/v1/agents/:id.
func (s *Server) deleteAgentHandler(c *gin.Context) {
	if err := s.agents.DeleteAgent(c.Request.Context(), c.Param("id")); err != nil {
		s.abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
