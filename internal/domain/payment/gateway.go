package payment

import (
	"context"
	"fmt"

	"github.com/caredesk/caredesk/internal/platform/api"
	"github.com/caredesk/caredesk/pkg/pagination"
)

// Resource is the cache-key resource name for payments.
const Resource = "payments"

type Gateway struct {
	api *api.Client
}

func NewGateway(c *api.Client) *Gateway {
	return &Gateway{api: c}
}

func (g *Gateway) List(ctx context.Context, p pagination.Params) ([]Payment, int, error) {
	return api.ListResource(ctx, g.api, "/payments", p.Query(), fromWire)
}

func (g *Gateway) Get(ctx context.Context, id int) (Payment, error) {
	return api.GetResource(ctx, g.api, fmt.Sprintf("/payments/%d", id), fromWire)
}

func (g *Gateway) Create(ctx context.Context, payload map[string]any) (Payment, error) {
	return api.CreateResource(ctx, g.api, "/payments", payload, fromWire)
}

func (g *Gateway) Update(ctx context.Context, id int, payload map[string]any) (Payment, error) {
	return api.UpdateResource(ctx, g.api, fmt.Sprintf("/payments/%d", id), payload, fromWire)
}
