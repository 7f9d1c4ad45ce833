package appointment

import "github.com/caredesk/caredesk/internal/platform/normalize"

// Appointment is the caller-facing view of a backend appointment record.
// Backend responses carry ids either flat (patientId) or nested under the
// related object (patient.id) depending on the endpoint.
type Appointment struct {
	AppointmentID   int    `json:"appointment_id"`
	PatientID       int    `json:"patient_id"`
	DoctorID        int    `json:"doctor_id"`
	AppointmentTime string `json:"appointment_time"`
	Status          string `json:"status"`
	Reason          string `json:"reason"`
	CreatedAt       string `json:"created_at"`
}

func fromWire(raw map[string]any) Appointment {
	return Appointment{
		AppointmentID:   normalize.Int(raw, "id"),
		PatientID:       normalize.Int(raw, "patientId", "patient.id"),
		DoctorID:        normalize.Int(raw, "doctorId", "doctor.id"),
		AppointmentTime: normalize.Str(raw, "appointmentDate"),
		Status:          normalize.Str(raw, "status"),
		Reason:          normalize.Str(raw, "reason", "title"),
		CreatedAt:       normalize.Str(raw, "createdAt"),
	}
}
