package medicine

import (
	"context"
	"fmt"

	"github.com/caredesk/caredesk/internal/platform/api"
	"github.com/caredesk/caredesk/pkg/pagination"
)

// Resource is the cache-key resource name for medicines.
const Resource = "medicines"

type Gateway struct {
	api *api.Client
}

func NewGateway(c *api.Client) *Gateway {
	return &Gateway{api: c}
}

func (g *Gateway) List(ctx context.Context, p pagination.Params) ([]Medicine, int, error) {
	return api.ListResource(ctx, g.api, "/medicines", p.Query(), fromWire)
}

func (g *Gateway) Get(ctx context.Context, id int) (Medicine, error) {
	return api.GetResource(ctx, g.api, fmt.Sprintf("/medicines/%d", id), fromWire)
}

func (g *Gateway) Create(ctx context.Context, payload map[string]any) (Medicine, error) {
	return api.CreateResource(ctx, g.api, "/medicines", payload, fromWire)
}

func (g *Gateway) Update(ctx context.Context, id int, payload map[string]any) (Medicine, error) {
	return api.UpdateResource(ctx, g.api, fmt.Sprintf("/medicines/%d", id), payload, fromWire)
}

func (g *Gateway) Delete(ctx context.Context, id int) error {
	return g.api.Delete(ctx, fmt.Sprintf("/medicines/%d", id))
}
