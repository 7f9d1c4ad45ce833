package normalize

import (
	"encoding/json"
	"testing"
)

func decode(t *testing.T, body string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(body), &m); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return m
}

func TestStrFallbackPaths(t *testing.T) {
	m := decode(t, `{"title":"follow-up","patient":{"id":9}}`)
	if got := Str(m, "reason", "title"); got != "follow-up" {
		t.Errorf("Str = %q, want fallback to title", got)
	}
	if got := Str(m, "reason"); got != "" {
		t.Errorf("Str = %q, want empty default", got)
	}
}

func TestIntNestedFallback(t *testing.T) {
	m := decode(t, `{"patient":{"id":9},"doctorId":"12"}`)
	if got := Int(m, "patientId", "patient.id"); got != 9 {
		t.Errorf("Int = %d, want nested fallback 9", got)
	}
	if got := Int(m, "doctorId"); got != 12 {
		t.Errorf("Int = %d, want string number 12", got)
	}
	if got := Int(m, "pharmacyId"); got != 0 {
		t.Errorf("Int = %d, want zero default", got)
	}
}

func TestFloatDefault(t *testing.T) {
	m := decode(t, `{"consultationFee":150.5}`)
	if got := Float(m, "consultationFee"); got != 150.5 {
		t.Errorf("Float = %v", got)
	}
	if got := Float(m, "amount"); got != 0 {
		t.Errorf("Float = %v, want zero default", got)
	}
}

func TestJoin(t *testing.T) {
	m := decode(t, `{"availableDays":["Mon","Wed","Fri"]}`)
	if got := Join(m, ", ", "availableDays"); got != "Mon, Wed, Fri" {
		t.Errorf("Join = %q", got)
	}
	if got := Join(m, ", ", "missing"); got != "" {
		t.Errorf("Join = %q, want empty", got)
	}
}

func TestFullName(t *testing.T) {
	m := decode(t, `{"user":{"firstName":"Asha","lastName":"Rao"}}`)
	if got := FullName(m, "user.firstName", "user.lastName"); got != "Asha Rao" {
		t.Errorf("FullName = %q", got)
	}
	only := decode(t, `{"user":{"firstName":"Asha"}}`)
	if got := FullName(only, "user.firstName", "user.lastName"); got != "Asha" {
		t.Errorf("FullName = %q, want trimmed single name", got)
	}
}

func TestPruneEmpty(t *testing.T) {
	in := map[string]any{
		"specialization": "cardiology",
		"email":          "",
		"phone":          nil,
		"fee":            0.0,
	}
	out := PruneEmpty(in)
	if _, ok := out["email"]; ok {
		t.Error("empty string should be pruned")
	}
	if _, ok := out["phone"]; ok {
		t.Error("nil should be pruned")
	}
	if out["specialization"] != "cardiology" {
		t.Error("non-empty values must survive")
	}
	if _, ok := out["fee"]; !ok {
		t.Error("numeric zero is a legitimate value, must survive")
	}
}
