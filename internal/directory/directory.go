// Package directory holds the ordered, compiled-in list of agents shown on
// the landing page.
package directory

import "github.com/mtlprog/agenthub/internal/domain"

// Directory is an immutable, ordered sequence of agents.
// The zero value is an empty directory.
type Directory struct {
	agents []domain.Agent
}

// New creates a Directory holding a copy of agents in the given order.
func New(agents ...domain.Agent) *Directory {
	cp := make([]domain.Agent, len(agents))
	copy(cp, agents)
	return &Directory{agents: cp}
}

// All returns the agents in authored order. The returned slice is a copy.
func (d *Directory) All() []domain.Agent {
	cp := make([]domain.Agent, len(d.agents))
	copy(cp, d.agents)
	return cp
}

// Len returns the number of agents.
func (d *Directory) Len() int {
	return len(d.agents)
}
