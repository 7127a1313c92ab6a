package handler

import (
	"fmt"
	"net/http"

	"github.com/mtlprog/agenthub/internal/domain"
	"github.com/mtlprog/agenthub/internal/handler/dto"
)

// handleListAgents returns the directory in authored order.
// @Summary List agents
// @Description Returns every agent shown on the landing page, in page order.
// @Tags agents
// @Produce json
// @Success 200 {array} dto.AgentResponse
// @Router /agents [get]
func (h *Handler) handleListAgents(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, dto.ToAgentResponses(h.dir.All()))
}

// handleGetAgent returns a single agent.
// @Summary Get agent
// @Tags agents
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {object} dto.AgentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /agents/{id} [get]
func (h *Handler) handleGetAgent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	for _, agent := range h.dir.All() {
		if agent.ID == id {
			respondJSON(w, http.StatusOK, dto.ToAgentResponse(agent))
			return
		}
	}

	respondDomainError(w, fmt.Errorf("%w: %s", domain.ErrAgentNotFound, id))
}
