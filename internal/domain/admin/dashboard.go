// Package admin assembles the dashboard summary out of the other resource
// gateways. It is the one aggregation point allowed to swallow errors: each
// sub-fetch settles independently and a failed slice degrades to zeroed
// stats instead of failing the dashboard.
package admin

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/caredesk/caredesk/internal/domain/appointment"
	"github.com/caredesk/caredesk/internal/domain/doctor"
	"github.com/caredesk/caredesk/internal/domain/patient"
	"github.com/caredesk/caredesk/internal/domain/payment"
	"github.com/caredesk/caredesk/internal/domain/pharmacyorder"
	"github.com/caredesk/caredesk/pkg/pagination"
)

type AppointmentLister interface {
	List(ctx context.Context, p pagination.Params) ([]appointment.Appointment, int, error)
}

type DoctorLister interface {
	List(ctx context.Context, p pagination.Params) ([]doctor.Doctor, int, error)
}

type PatientLister interface {
	List(ctx context.Context, p pagination.Params) ([]patient.Patient, int, error)
}

type PaymentLister interface {
	List(ctx context.Context, p pagination.Params) ([]payment.Payment, int, error)
}

type OrderLister interface {
	List(ctx context.Context, p pagination.Params) ([]pharmacyorder.Order, int, error)
}

type Dashboard struct {
	appointments AppointmentLister
	doctors      DoctorLister
	patients     PatientLister
	payments     PaymentLister
	orders       OrderLister
	log          zerolog.Logger
}

func NewDashboard(
	appointments AppointmentLister,
	doctors DoctorLister,
	patients PatientLister,
	payments PaymentLister,
	orders OrderLister,
	log zerolog.Logger,
) *Dashboard {
	return &Dashboard{
		appointments: appointments,
		doctors:      doctors,
		patients:     patients,
		payments:     payments,
		orders:       orders,
		log:          log,
	}
}

// Overview issues the five list fetches in parallel and derives the summary.
// It always resolves; failed slices carry their zero defaults.
func (d *Dashboard) Overview(ctx context.Context) (Stats, error) {
	p := pagination.Params{Page: 1, Limit: pagination.MaxLimit}
	var stats Stats

	g, gctx := errgroup.WithContext(ctx)
	settle(g, gctx, d.log, "appointments", &stats.Appointments, 0, func(ctx context.Context) (int, error) {
		_, total, err := d.appointments.List(ctx, p)
		return total, err
	})
	settle(g, gctx, d.log, "doctors", &stats.Doctors, 0, func(ctx context.Context) (int, error) {
		_, total, err := d.doctors.List(ctx, p)
		return total, err
	})
	settle(g, gctx, d.log, "patients", &stats.Patients, 0, func(ctx context.Context) (int, error) {
		_, total, err := d.patients.List(ctx, p)
		return total, err
	})
	settle(g, gctx, d.log, "payments", &stats.Payments, PaymentStats{}, func(ctx context.Context) (PaymentStats, error) {
		items, total, err := d.payments.List(ctx, p)
		if err != nil {
			return PaymentStats{}, err
		}
		ps := PaymentStats{Total: total}
		for _, pay := range items {
			if strings.EqualFold(pay.Status, "completed") {
				ps.Collected += pay.Amount
			}
		}
		return ps, nil
	})
	settle(g, gctx, d.log, "orders", &stats.Orders, OrderStats{}, func(ctx context.Context) (OrderStats, error) {
		items, total, err := d.orders.List(ctx, p)
		if err != nil {
			return OrderStats{}, err
		}
		os := OrderStats{Total: total}
		for _, o := range items {
			switch {
			case strings.EqualFold(o.Status, "pending"):
				os.Pending++
			case strings.EqualFold(o.Status, "completed"):
				os.Completed++
			case strings.EqualFold(o.Status, "cancelled"):
				os.Cancelled++
			}
		}
		return os, nil
	})

	_ = g.Wait() // settle never returns errors
	return stats, nil
}

// RecentActivities merges the latest appointments and payments into one feed,
// newest first. A failing sub-fetch contributes nothing instead of failing
// the feed.
func (d *Dashboard) RecentActivities(ctx context.Context, limit int) ([]Activity, error) {
	if limit <= 0 {
		limit = 10
	}
	p := pagination.Params{Page: 1, Limit: limit}

	var appts []appointment.Appointment
	var pays []payment.Payment

	g, gctx := errgroup.WithContext(ctx)
	settle(g, gctx, d.log, "recent appointments", &appts, nil, func(ctx context.Context) ([]appointment.Appointment, error) {
		items, _, err := d.appointments.List(ctx, p)
		return items, err
	})
	settle(g, gctx, d.log, "recent payments", &pays, nil, func(ctx context.Context) ([]payment.Payment, error) {
		items, _, err := d.payments.List(ctx, p)
		return items, err
	})
	_ = g.Wait()

	feed := make([]Activity, 0, len(appts)+len(pays))
	for _, a := range appts {
		feed = append(feed, Activity{
			Kind:        "appointment",
			Description: fmt.Sprintf("appointment #%d for patient #%d", a.AppointmentID, a.PatientID),
			Status:      a.Status,
			OccurredAt:  a.CreatedAt,
		})
	}
	for _, pay := range pays {
		feed = append(feed, Activity{
			Kind:        "payment",
			Description: fmt.Sprintf("payment #%d of %.2f", pay.PaymentID, pay.Amount),
			Status:      pay.Status,
			OccurredAt:  pay.CreatedAt,
		})
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].OccurredAt > feed[j].OccurredAt
	})
	if len(feed) > limit {
		feed = feed[:limit]
	}
	return feed, nil
}
