package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/caredesk/caredesk/internal/domain/appointment"
	"github.com/caredesk/caredesk/internal/domain/doctor"
	"github.com/caredesk/caredesk/internal/domain/medicine"
	"github.com/caredesk/caredesk/internal/domain/patient"
	"github.com/caredesk/caredesk/internal/domain/payment"
	"github.com/caredesk/caredesk/internal/domain/pharmacyorder"
	"github.com/caredesk/caredesk/internal/domain/prescription"
	"github.com/caredesk/caredesk/internal/domain/record"
	"github.com/caredesk/caredesk/internal/domain/user"
	"github.com/caredesk/caredesk/internal/platform/querycache"
	"github.com/caredesk/caredesk/pkg/pagination"
)

// resourceOps adapts one typed gateway to the shared command skeleton. A nil
// remove means the backend exposes no delete for the resource.
type resourceOps struct {
	use      string
	short    string
	resource string
	list     func(a *app, ctx context.Context, p pagination.Params) (any, int, error)
	get      func(a *app, ctx context.Context, id int) (any, error)
	create   func(a *app, ctx context.Context, payload map[string]any) (any, error)
	update   func(a *app, ctx context.Context, id int, payload map[string]any) (any, error)
	remove   func(a *app, ctx context.Context, id int) error
}

func resourceCommands() []resourceOps {
	return []resourceOps{
		gatewayOps("appointments", "Manage appointments", appointment.Resource,
			func(a *app) crud[appointment.Appointment] { return appointment.NewGateway(a.client) }),
		gatewayOps("doctors", "Manage doctor profiles", doctor.Resource,
			func(a *app) crud[doctor.Doctor] { return doctor.NewGateway(a.client) }),
		gatewayOps("patients", "Manage patient profiles", patient.Resource,
			func(a *app) crud[patient.Patient] { return patient.NewGateway(a.client) }),
		gatewayOps("medicines", "Manage the medicine catalog", medicine.Resource,
			func(a *app) crud[medicine.Medicine] { return medicine.NewGateway(a.client) }),
		gatewayOps("prescriptions", "Manage prescriptions", prescription.Resource,
			func(a *app) crud[prescription.Prescription] { return prescription.NewGateway(a.client) }),
		gatewayOps("pharmacy-orders", "Manage pharmacy orders", pharmacyorder.Resource,
			func(a *app) crud[pharmacyorder.Order] { return pharmacyorder.NewGateway(a.client) }),
		gatewayOps("users", "Manage user accounts", user.Resource,
			func(a *app) crud[user.User] { return user.NewGateway(a.client) }),
		gatewayOps("records", "Manage medical records", record.Resource,
			func(a *app) crud[record.Record] { return record.NewGateway(a.client) }),
		paymentOps(),
	}
}

// crud is the method set every resource gateway shares. Payments opt out of
// Delete and get hand-wired ops instead.
type crud[T any] interface {
	List(ctx context.Context, p pagination.Params) ([]T, int, error)
	Get(ctx context.Context, id int) (T, error)
	Create(ctx context.Context, payload map[string]any) (T, error)
	Update(ctx context.Context, id int, payload map[string]any) (T, error)
	Delete(ctx context.Context, id int) error
}

func gatewayOps[T any](use, short, resource string, gw func(*app) crud[T]) resourceOps {
	return resourceOps{
		use:      use,
		short:    short,
		resource: resource,
		list: func(a *app, ctx context.Context, p pagination.Params) (any, int, error) {
			items, total, err := gw(a).List(ctx, p)
			return items, total, err
		},
		get: func(a *app, ctx context.Context, id int) (any, error) {
			return gw(a).Get(ctx, id)
		},
		create: func(a *app, ctx context.Context, payload map[string]any) (any, error) {
			return gw(a).Create(ctx, payload)
		},
		update: func(a *app, ctx context.Context, id int, payload map[string]any) (any, error) {
			return gw(a).Update(ctx, id, payload)
		},
		remove: func(a *app, ctx context.Context, id int) error {
			return gw(a).Delete(ctx, id)
		},
	}
}

func paymentOps() resourceOps {
	return resourceOps{
		use:      "payments",
		short:    "Manage payments",
		resource: payment.Resource,
		list: func(a *app, ctx context.Context, p pagination.Params) (any, int, error) {
			items, total, err := payment.NewGateway(a.client).List(ctx, p)
			return items, total, err
		},
		get: func(a *app, ctx context.Context, id int) (any, error) {
			return payment.NewGateway(a.client).Get(ctx, id)
		},
		create: func(a *app, ctx context.Context, payload map[string]any) (any, error) {
			return payment.NewGateway(a.client).Create(ctx, payload)
		},
		update: func(a *app, ctx context.Context, id int, payload map[string]any) (any, error) {
			return payment.NewGateway(a.client).Update(ctx, id, payload)
		},
	}
}

func resourceCmd(ops resourceOps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   ops.use,
		Short: ops.short,
	}
	cmd.AddCommand(listSubCmd(ops))
	cmd.AddCommand(getSubCmd(ops))
	cmd.AddCommand(createSubCmd(ops))
	cmd.AddCommand(updateSubCmd(ops))
	if ops.remove != nil {
		cmd.AddCommand(deleteSubCmd(ops))
	}
	return cmd
}

func listSubCmd(ops resourceOps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List " + ops.use,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			p := pagination.Params{}
			p.Page, _ = cmd.Flags().GetInt("page")
			p.Limit, _ = cmd.Flags().GetInt("limit")
			p.Search, _ = cmd.Flags().GetString("search")
			p = p.Normalized()

			key := querycache.ListKey(ops.resource, p.Page, p.Limit, p.Search)
			resp, err := querycache.Query(cmd.Context(), a.cache, key, func(ctx context.Context) (*pagination.Response, error) {
				items, total, err := ops.list(a, ctx, p)
				if err != nil {
					return nil, err
				}
				return pagination.NewResponse(items, total), nil
			})
			if err != nil {
				return err
			}
			return printJSON(resp)
		},
	}
	cmd.Flags().Int("page", 1, "Page number")
	cmd.Flags().Int("limit", pagination.DefaultLimit, "Page size")
	cmd.Flags().String("search", "", "Filter by search term")
	return cmd
}

func getSubCmd(ops resourceOps) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch one of " + ops.use + " by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := newApp()
			if err != nil {
				return err
			}
			key := querycache.GetKey(ops.resource, args[0])
			v, err := querycache.Query(cmd.Context(), a.cache, key, func(ctx context.Context) (any, error) {
				return ops.get(a, ctx, id)
			})
			if err != nil {
				return err
			}
			return printJSON(v)
		},
	}
}

func createSubCmd(ops resourceOps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create one of " + ops.use,
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := payloadFlag(cmd)
			if err != nil {
				return err
			}
			a, err := newApp()
			if err != nil {
				return err
			}
			var created any
			err = a.cache.Mutate(cmd.Context(), func(ctx context.Context) error {
				created, err = ops.create(a, ctx, payload)
				return err
			}, ops.resource)
			if err != nil {
				return err
			}
			return printJSON(created)
		},
	}
	cmd.Flags().String("data", "", "JSON object payload")
	return cmd
}

func updateSubCmd(ops resourceOps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update one of " + ops.use,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			payload, err := payloadFlag(cmd)
			if err != nil {
				return err
			}
			a, err := newApp()
			if err != nil {
				return err
			}
			var updated any
			err = a.cache.Mutate(cmd.Context(), func(ctx context.Context) error {
				updated, err = ops.update(a, ctx, id, payload)
				return err
			}, ops.resource)
			if err != nil {
				return err
			}
			return printJSON(updated)
		},
	}
	cmd.Flags().String("data", "", "JSON object payload")
	return cmd
}

func deleteSubCmd(ops resourceOps) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one of " + ops.use,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := newApp()
			if err != nil {
				return err
			}
			return a.cache.Mutate(cmd.Context(), func(ctx context.Context) error {
				return ops.remove(a, ctx, id)
			}, ops.resource)
		},
	}
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func payloadFlag(cmd *cobra.Command) (map[string]any, error) {
	data, _ := cmd.Flags().GetString("data")
	if data == "" {
		return nil, fmt.Errorf("--data is required")
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		return nil, fmt.Errorf("parse --data: %w", err)
	}
	return payload, nil
}
