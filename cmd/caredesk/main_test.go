package main

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/caredesk/caredesk/internal/config"
)

func TestParseID_Valid(t *testing.T) {
	id, err := parseID("42")
	if err != nil || id != 42 {
		t.Errorf("parseID(42) = %d, %v", id, err)
	}
}

func TestParseID_Rejects(t *testing.T) {
	for _, in := range []string{"", "abc", "0", "-3", "1.5"} {
		if _, err := parseID(in); err == nil {
			t.Errorf("parseID(%q) should fail", in)
		}
	}
}

func TestPayloadFlag_RequiresData(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().String("data", "", "")
	if _, err := payloadFlag(cmd); err == nil {
		t.Error("empty --data should fail")
	}
}

func TestPayloadFlag_ParsesObject(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().String("data", "", "")
	if err := cmd.Flags().Set("data", `{"status":"cancelled","amount":5}`); err != nil {
		t.Fatal(err)
	}
	payload, err := payloadFlag(cmd)
	if err != nil {
		t.Fatalf("payloadFlag: %v", err)
	}
	if payload["status"] != "cancelled" {
		t.Errorf("payload = %v", payload)
	}
}

func TestPayloadFlag_RejectsNonObject(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().String("data", "", "")
	if err := cmd.Flags().Set("data", `[1,2,3]`); err != nil {
		t.Fatal(err)
	}
	if _, err := payloadFlag(cmd); err == nil {
		t.Error("array payload should fail")
	}
}

func TestResourceCommands_PaymentsHaveNoDelete(t *testing.T) {
	for _, ops := range resourceCommands() {
		hasDelete := false
		for _, sub := range resourceCmd(ops).Commands() {
			if sub.Name() == "delete" {
				hasDelete = true
			}
		}
		if ops.use == "payments" && hasDelete {
			t.Error("payments must not expose delete")
		}
		if ops.use != "payments" && !hasDelete {
			t.Errorf("%s should expose delete", ops.use)
		}
	}
}

func TestResourceCommands_CoverAllResources(t *testing.T) {
	want := map[string]bool{
		"appointments": true, "doctors": true, "patients": true,
		"medicines": true, "prescriptions": true, "pharmacy-orders": true,
		"payments": true, "users": true, "records": true,
	}
	for _, ops := range resourceCommands() {
		if !want[ops.use] {
			t.Errorf("unexpected resource command %q", ops.use)
		}
		delete(want, ops.use)
	}
	for name := range want {
		t.Errorf("missing resource command %q", name)
	}
}

func TestNewLogger_FallsBackToInfo(t *testing.T) {
	log := newLogger(&config.Config{LogLevel: "nonsense", LogFormat: "json"})
	if log.GetLevel() != zerolog.InfoLevel {
		t.Errorf("level = %v", log.GetLevel())
	}
}

func TestNewLogger_HonorsLevel(t *testing.T) {
	log := newLogger(&config.Config{LogLevel: "warn", LogFormat: "json"})
	if log.GetLevel() != zerolog.WarnLevel {
		t.Errorf("level = %v", log.GetLevel())
	}
}

func TestNewApp_BuildsFromDefaults(t *testing.T) {
	t.Setenv("SESSION_FILE", filepath.Join(t.TempDir(), "session.json"))

	a, err := newApp()
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}
	if a.cfg == nil || a.client == nil || a.sess == nil || a.cache == nil {
		t.Errorf("app not fully wired: %+v", a)
	}
}

func TestNewApp_RejectsBadLogFormat(t *testing.T) {
	t.Setenv("SESSION_FILE", filepath.Join(t.TempDir(), "session.json"))
	t.Setenv("LOG_FORMAT", "yaml")

	if _, err := newApp(); err == nil {
		t.Error("newApp should refuse an unknown LOG_FORMAT")
	}
}

func TestNewApp_RejectsZeroRefreshInterval(t *testing.T) {
	t.Setenv("SESSION_FILE", filepath.Join(t.TempDir(), "session.json"))
	t.Setenv("REFRESH_INTERVAL", "0s")

	if _, err := newApp(); err == nil {
		t.Error("newApp should refuse a non-positive REFRESH_INTERVAL")
	}
}
