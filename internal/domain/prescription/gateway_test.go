package prescription

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/caredesk/caredesk/internal/platform/api"
	"github.com/caredesk/caredesk/pkg/pagination"
)

type testTokens struct{}

func (testTokens) AccessToken() string { return "t" }

func newTestGateway(t *testing.T, handler http.Handler) *Gateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := api.NewClient(api.ClientConfig{BaseURL: srv.URL, Tokens: testTokens{}, Logger: zerolog.Nop()})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return NewGateway(c)
}

func TestCreatedAtPrefersIssueDate(t *testing.T) {
	g := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id":1,"patientId":3,"doctorId":4,"appointmentId":5,"notes":"twice daily",
			 "issueDate":"2026-08-01","createdAt":"2026-08-02"},
			{"id":2,"patientId":3,"createdAt":"2026-08-03"}
		]`))
	}))

	got, total, err := g.List(context.Background(), pagination.Params{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 {
		t.Fatalf("total = %d", total)
	}
	if got[0].CreatedAt != "2026-08-01" {
		t.Errorf("CreatedAt = %q, issueDate must win", got[0].CreatedAt)
	}
	if got[1].CreatedAt != "2026-08-03" {
		t.Errorf("CreatedAt = %q, createdAt fallback", got[1].CreatedAt)
	}
	if got[0].AppointmentID != 5 || got[1].AppointmentID != 0 {
		t.Errorf("appointment ids = %d, %d", got[0].AppointmentID, got[1].AppointmentID)
	}
}
