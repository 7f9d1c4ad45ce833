package user

import (
	"context"
	"fmt"

	"github.com/caredesk/caredesk/internal/platform/api"
	"github.com/caredesk/caredesk/internal/platform/normalize"
	"github.com/caredesk/caredesk/pkg/pagination"
)

// Resource is the cache-key resource name for users.
const Resource = "users"

type Gateway struct {
	api *api.Client
}

func NewGateway(c *api.Client) *Gateway {
	return &Gateway{api: c}
}

func (g *Gateway) List(ctx context.Context, p pagination.Params) ([]User, int, error) {
	return api.ListResource(ctx, g.api, "/users", p.Query(), fromWire)
}

func (g *Gateway) Get(ctx context.Context, id int) (User, error) {
	return api.GetResource(ctx, g.api, fmt.Sprintf("/users/%d", id), fromWire)
}

func (g *Gateway) Create(ctx context.Context, payload map[string]any) (User, error) {
	return api.CreateResource(ctx, g.api, "/users", payload, fromWire)
}

// Update prunes empty payload fields: profile edits submit partial forms and
// must not blank out server-side fields.
func (g *Gateway) Update(ctx context.Context, id int, payload map[string]any) (User, error) {
	return api.UpdateResource(ctx, g.api, fmt.Sprintf("/users/%d", id), normalize.PruneEmpty(payload), fromWire)
}

func (g *Gateway) Delete(ctx context.Context, id int) error {
	return g.api.Delete(ctx, fmt.Sprintf("/users/%d", id))
}
