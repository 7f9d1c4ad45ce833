package doctor

import (
	"context"
	"fmt"

	"github.com/caredesk/caredesk/internal/platform/api"
	"github.com/caredesk/caredesk/internal/platform/normalize"
	"github.com/caredesk/caredesk/pkg/pagination"
)

// Resource is the cache-key resource name for doctors.
const Resource = "doctors"

type Gateway struct {
	api *api.Client
}

func NewGateway(c *api.Client) *Gateway {
	return &Gateway{api: c}
}

func (g *Gateway) List(ctx context.Context, p pagination.Params) ([]Doctor, int, error) {
	return api.ListResource(ctx, g.api, "/doctors", p.Query(), fromWire)
}

func (g *Gateway) Get(ctx context.Context, id int) (Doctor, error) {
	return api.GetResource(ctx, g.api, fmt.Sprintf("/doctors/%d", id), fromWire)
}

func (g *Gateway) Create(ctx context.Context, payload map[string]any) (Doctor, error) {
	return api.CreateResource(ctx, g.api, "/doctors", payload, fromWire)
}

// Update prunes empty payload fields first so a partial form submit never
// blanks out profile fields the backend already holds.
func (g *Gateway) Update(ctx context.Context, id int, payload map[string]any) (Doctor, error) {
	return api.UpdateResource(ctx, g.api, fmt.Sprintf("/doctors/%d", id), normalize.PruneEmpty(payload), fromWire)
}

func (g *Gateway) Delete(ctx context.Context, id int) error {
	return g.api.Delete(ctx, fmt.Sprintf("/doctors/%d", id))
}
