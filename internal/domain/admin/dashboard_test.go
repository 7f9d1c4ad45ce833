package admin

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/caredesk/caredesk/internal/domain/appointment"
	"github.com/caredesk/caredesk/internal/domain/doctor"
	"github.com/caredesk/caredesk/internal/domain/patient"
	"github.com/caredesk/caredesk/internal/domain/payment"
	"github.com/caredesk/caredesk/internal/domain/pharmacyorder"
	"github.com/caredesk/caredesk/pkg/pagination"
)

type mockAppointments struct {
	items []appointment.Appointment
	err   error
}

func (m *mockAppointments) List(_ context.Context, _ pagination.Params) ([]appointment.Appointment, int, error) {
	return m.items, len(m.items), m.err
}

type mockDoctors struct {
	total int
	err   error
}

func (m *mockDoctors) List(_ context.Context, _ pagination.Params) ([]doctor.Doctor, int, error) {
	return nil, m.total, m.err
}

type mockPatients struct {
	total int
	err   error
}

func (m *mockPatients) List(_ context.Context, _ pagination.Params) ([]patient.Patient, int, error) {
	return nil, m.total, m.err
}

type mockPayments struct {
	items []payment.Payment
	err   error
}

func (m *mockPayments) List(_ context.Context, _ pagination.Params) ([]payment.Payment, int, error) {
	return m.items, len(m.items), m.err
}

type mockOrders struct {
	items []pharmacyorder.Order
	err   error
}

func (m *mockOrders) List(_ context.Context, _ pagination.Params) ([]pharmacyorder.Order, int, error) {
	return m.items, len(m.items), m.err
}

func newTestDashboard(a *mockAppointments, d *mockDoctors, p *mockPatients, pay *mockPayments, o *mockOrders) *Dashboard {
	return NewDashboard(a, d, p, pay, o, zerolog.Nop())
}

func TestOverviewDerivesCounts(t *testing.T) {
	dash := newTestDashboard(
		&mockAppointments{items: make([]appointment.Appointment, 3)},
		&mockDoctors{total: 7},
		&mockPatients{total: 12},
		&mockPayments{items: []payment.Payment{
			{PaymentID: 1, Status: "completed", Amount: 100},
			{PaymentID: 2, Status: "COMPLETED", Amount: 50},
			{PaymentID: 3, Status: "pending", Amount: 75},
		}},
		&mockOrders{items: []pharmacyorder.Order{
			{Status: "pending"}, {Status: "Pending"},
			{Status: "completed"},
			{Status: "cancelled"},
			{Status: "shipped"},
		}},
	)

	stats, err := dash.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if stats.Appointments != 3 || stats.Doctors != 7 || stats.Patients != 12 {
		t.Errorf("counts = %+v", stats)
	}
	if stats.Payments.Total != 3 || stats.Payments.Collected != 150 {
		t.Errorf("payments = %+v", stats.Payments)
	}
	want := OrderStats{Total: 5, Pending: 2, Completed: 1, Cancelled: 1}
	if stats.Orders != want {
		t.Errorf("orders = %+v, want %+v", stats.Orders, want)
	}
}

func TestOverviewFailedSliceDegradesToZero(t *testing.T) {
	dash := newTestDashboard(
		&mockAppointments{items: make([]appointment.Appointment, 2)},
		&mockDoctors{total: 4},
		&mockPatients{total: 9},
		&mockPayments{items: []payment.Payment{{Status: "completed", Amount: 30}}},
		&mockOrders{err: fmt.Errorf("orders endpoint down")},
	)

	stats, err := dash.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview must resolve despite a failed slice, got %v", err)
	}
	if stats.Orders != (OrderStats{}) {
		t.Errorf("orders = %+v, want zeroed defaults", stats.Orders)
	}
	if stats.Appointments != 2 || stats.Doctors != 4 || stats.Patients != 9 {
		t.Errorf("healthy slices must still populate: %+v", stats)
	}
	if stats.Payments.Collected != 30 {
		t.Errorf("payments = %+v", stats.Payments)
	}
}

func TestOverviewAllSlicesFailed(t *testing.T) {
	boom := fmt.Errorf("backend down")
	dash := newTestDashboard(
		&mockAppointments{err: boom},
		&mockDoctors{err: boom},
		&mockPatients{err: boom},
		&mockPayments{err: boom},
		&mockOrders{err: boom},
	)

	stats, err := dash.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if stats != (Stats{}) {
		t.Errorf("stats = %+v, want all-zero", stats)
	}
}

func TestRecentActivitiesMergesNewestFirst(t *testing.T) {
	dash := newTestDashboard(
		&mockAppointments{items: []appointment.Appointment{
			{AppointmentID: 1, PatientID: 5, Status: "scheduled", CreatedAt: "2026-08-20T10:00:00Z"},
		}},
		&mockDoctors{},
		&mockPatients{},
		&mockPayments{items: []payment.Payment{
			{PaymentID: 2, Amount: 80, Status: "completed", CreatedAt: "2026-08-21T09:00:00Z"},
		}},
		&mockOrders{},
	)

	feed, err := dash.RecentActivities(context.Background(), 10)
	if err != nil {
		t.Fatalf("RecentActivities: %v", err)
	}
	if len(feed) != 2 {
		t.Fatalf("len = %d", len(feed))
	}
	if feed[0].Kind != "payment" {
		t.Errorf("feed[0] = %+v, newest entry must come first", feed[0])
	}
	if feed[1].Kind != "appointment" {
		t.Errorf("feed[1] = %+v", feed[1])
	}
}

func TestRecentActivitiesToleratesFailedSlice(t *testing.T) {
	dash := newTestDashboard(
		&mockAppointments{err: fmt.Errorf("down")},
		&mockDoctors{},
		&mockPatients{},
		&mockPayments{items: []payment.Payment{{PaymentID: 1, Status: "pending", CreatedAt: "2026-08-01"}}},
		&mockOrders{},
	)

	feed, err := dash.RecentActivities(context.Background(), 5)
	if err != nil {
		t.Fatalf("RecentActivities: %v", err)
	}
	if len(feed) != 1 || feed[0].Kind != "payment" {
		t.Errorf("feed = %+v", feed)
	}
}
