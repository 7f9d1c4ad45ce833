// Package sandbox is an in-memory fake of the healthcare backend for demos
// and tests. It deliberately reproduces the real backend's wire quirks:
// camelCase fields, identity nested under user objects, and a list envelope
// that differs per resource, so the gateways' normalization is exercised the
// same way it is in production.
package sandbox

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

type record = map[string]any

// Store holds the sandbox's records per resource. Records are stored in wire
// shape, exactly as the real backend would emit them.
type Store struct {
	mu     sync.RWMutex
	data   map[string][]record
	nextID map[string]int
}

func NewStore() *Store {
	return &Store{
		data:   make(map[string][]record),
		nextID: make(map[string]int),
	}
}

// List returns records of a resource filtered by search, newest last. The
// search matches any string field, case-insensitively.
func (s *Store) List(resource, search string) []record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]record, 0, len(s.data[resource]))
	needle := strings.ToLower(search)
	for _, r := range s.data[resource] {
		if needle == "" || matches(r, needle) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r record, needle string) bool {
	for _, v := range r {
		switch val := v.(type) {
		case string:
			if strings.Contains(strings.ToLower(val), needle) {
				return true
			}
		case map[string]any:
			if matches(val, needle) {
				return true
			}
		}
	}
	return false
}

// Get returns the record with the given numeric id.
func (s *Store) Get(resource string, id int) (record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.data[resource] {
		if recordID(r) == id {
			return r, true
		}
	}
	return nil, false
}

// Insert assigns the next id and appends the record.
func (s *Store) Insert(resource string, r record) record {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID[resource]++
	r["id"] = float64(s.nextID[resource])
	s.data[resource] = append(s.data[resource], r)
	return r
}

// Update merges payload into the record with the given id.
func (s *Store) Update(resource string, id int, payload record) (record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.data[resource] {
		if recordID(r) == id {
			for k, v := range payload {
				if k == "id" {
					continue
				}
				r[k] = v
			}
			return r, true
		}
	}
	return nil, false
}

// Delete removes the record with the given id.
func (s *Store) Delete(resource string, id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := s.data[resource]
	for i, r := range rows {
		if recordID(r) == id {
			s.data[resource] = append(rows[:i], rows[i+1:]...)
			return true
		}
	}
	return false
}

// FindUser looks up a seeded user by email for login.
func (s *Store) FindUser(email string) (record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.data["users"] {
		if r["email"] == email {
			return r, true
		}
	}
	return nil, false
}

func recordID(r record) int {
	if f, ok := r["id"].(float64); ok {
		return int(f)
	}
	return 0
}

// Seed loads a small, fixed demo dataset.
func (s *Store) Seed() {
	users := []record{
		{"firstName": "Ada", "lastName": "Okafor", "email": "admin@caredesk.local", "password": "admin123", "role": "admin", "createdAt": "2026-01-05T08:00:00Z"},
		{"firstName": "Asha", "lastName": "Rao", "email": "asha@caredesk.local", "password": "doctor123", "role": "doctor", "createdAt": "2026-01-06T08:00:00Z"},
		{"firstName": "Ben", "lastName": "Iyer", "email": "ben@caredesk.local", "password": "patient123", "role": "patient", "createdAt": "2026-01-07T08:00:00Z"},
		{"firstName": "Zara", "lastName": "Khan", "email": "zara@caredesk.local", "password": "pharma123", "role": "pharmacist", "createdAt": "2026-01-08T08:00:00Z"},
	}
	for _, u := range users {
		s.Insert("users", u)
	}

	doctors := []record{
		{
			"user":            record{"firstName": "Asha", "lastName": "Rao", "email": "asha@caredesk.local"},
			"specialization":  "cardiology",
			"licenseNumber":   "LIC-1001",
			"consultationFee": 250.0,
			"availableDays":   []any{"Mon", "Wed", "Fri"},
		},
		{
			"user":            record{"firstName": "Mira", "lastName": "Nair", "email": "mira@caredesk.local"},
			"specialization":  "dermatology",
			"licenseNumber":   "LIC-1002",
			"consultationFee": 180.0,
			"availableDays":   []any{"Tue", "Thu"},
		},
	}
	for _, d := range doctors {
		s.Insert("doctors", d)
	}

	patients := []record{
		{"user": record{"firstName": "Ben", "lastName": "Iyer", "email": "ben@caredesk.local"}, "phone": "555-0101", "gender": "male", "dateOfBirth": "1990-04-12", "address": "12 Lake Rd", "createdAt": "2026-02-01T10:00:00Z"},
		{"user": record{"firstName": "Lena", "lastName": "Silva", "email": "lena@caredesk.local"}, "phone": "555-0102", "gender": "female", "dateOfBirth": "1985-11-30", "address": "4 Hill St", "createdAt": "2026-02-02T10:00:00Z"},
	}
	for _, p := range patients {
		s.Insert("patients", p)
	}

	// Appointments intentionally mix flat and nested id shapes.
	s.Insert("appointments", record{"patientId": 1.0, "doctorId": 1.0, "appointmentDate": "2026-09-03T09:30:00Z", "status": "scheduled", "reason": "annual checkup", "createdAt": "2026-08-20T12:00:00Z"})
	s.Insert("appointments", record{"patient": record{"id": 2.0}, "doctor": record{"id": 2.0}, "appointmentDate": "2026-09-04T14:00:00Z", "status": "pending", "title": "rash follow-up", "createdAt": "2026-08-21T12:00:00Z"})

	s.Insert("medicines", record{"name": "Amoxicillin 500mg", "manufacturer": "Generix", "price": 12.5, "stock": 230.0, "expiryDate": "2027-05-01", "createdAt": "2026-03-01T09:00:00Z"})
	s.Insert("medicines", record{"name": "Lisinopril 10mg", "manufacturer": "HeartWell", "price": 8.0, "stockQuantity": 120.0, "expiryDate": "2027-01-15", "createdAt": "2026-03-02T09:00:00Z"})

	s.Insert("prescriptions", record{"patientId": 1.0, "doctorId": 1.0, "appointmentId": 1.0, "notes": "one tablet daily after meals", "issueDate": "2026-08-22", "createdAt": "2026-08-22T15:00:00Z"})

	s.Insert("payments", record{"relatedEntityId": 1.0, "userId": 1.0, "paymentMethod": "card", "amount": 250.0, "status": "completed", "createdAt": "2026-08-22T16:00:00Z"})
	s.Insert("payments", record{"orderId": 1.0, "userId": 2.0, "paymentMethod": "cash", "amount": 12.5, "status": "pending", "createdAt": "2026-08-23T16:00:00Z"})

	s.Insert("pharmacy-orders", record{
		"patientId":  2.0,
		"pharmacyId": 1.0,
		"medicineId": 1.0,
		"patient":    record{"user": record{"firstName": "Lena", "lastName": "Silva"}},
		"pharmacy":   record{"name": "Central Pharmacy"},
		"quantity":   2.0,
		"status":     "pending",
		"createdAt":  "2026-08-23T11:00:00Z",
		"OrderId":    fmt.Sprintf("ORD-%s", uuid.NewString()[:8]),
	})

	s.Insert("records", record{"patientId": 1.0, "doctorId": 1.0, "appointmentId": 1.0, "diagnosis": "hypertension, stage 1", "notes": "monitor blood pressure weekly", "recordDate": "2026-08-22", "createdAt": "2026-08-22T15:30:00Z"})
}
