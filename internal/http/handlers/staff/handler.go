package staff

import "github.com/VPodolski/MakiMora/internal/provider"

// Handler serves the authenticated staff endpoints: the order
// workflow, role queues and the back-office administration.
type Handler struct {
	*provider.Container
}

// New creates the staff handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
