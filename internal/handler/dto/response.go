package dto

import "github.com/mtlprog/agenthub/internal/domain"

// AgentStatusActive is the only status an agent in the directory can have.
const AgentStatusActive = "active"

// AgentResponse represents an agent in the API.
type AgentResponse struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Link        string  `json:"link" yaml:"link"`
	Status      string  `json:"status" yaml:"status"`
	Icon        string  `json:"icon" yaml:"icon"`
	Badge       *string `json:"badge,omitempty" yaml:"badge,omitempty"`
	ShortLink   *string `json:"short_link,omitempty" yaml:"short_link,omitempty"`
}

// HealthResponse represents the response for GET /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// ToAgentResponse converts domain.Agent to AgentResponse.
func ToAgentResponse(agent domain.Agent) AgentResponse {
	resp := AgentResponse{
		ID:          agent.ID,
		Name:        agent.Name,
		Description: agent.Description,
		Link:        agent.DestinationURL,
		Status:      AgentStatusActive,
		Icon:        string(agent.Icon),
	}
	if agent.HasBadge() {
		badge := agent.BadgeLabel
		resp.Badge = &badge
	}
	if agent.HasShortLink() {
		short := agent.ShortLinkLabel
		resp.ShortLink = &short
	}
	return resp
}

// ToAgentResponses converts agents preserving their order.
func ToAgentResponses(agents []domain.Agent) []AgentResponse {
	out := make([]AgentResponse, len(agents))
	for i, a := range agents {
		out[i] = ToAgentResponse(a)
	}
	return out
}
