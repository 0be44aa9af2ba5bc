package public

import "github.com/VPodolski/MakiMora/internal/provider"

// Handler serves the customer-facing endpoints: ordering, tracking and
// the storefront catalog. No authentication required.
type Handler struct {
	*provider.Container
}

// New creates the public handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
