package prescription

import "github.com/caredesk/caredesk/internal/platform/normalize"

// Prescription is the caller-facing view of a backend prescription record.
// Some endpoints date prescriptions by issueDate, others by createdAt.
type Prescription struct {
	PrescriptionID int    `json:"prescription_id"`
	PatientID      int    `json:"patient_id"`
	DoctorID       int    `json:"doctor_id"`
	AppointmentID  int    `json:"appointment_id"`
	Notes          string `json:"notes"`
	CreatedAt      string `json:"created_at"`
}

func fromWire(raw map[string]any) Prescription {
	return Prescription{
		PrescriptionID: normalize.Int(raw, "id"),
		PatientID:      normalize.Int(raw, "patientId", "patient.id"),
		DoctorID:       normalize.Int(raw, "doctorId", "doctor.id"),
		AppointmentID:  normalize.Int(raw, "appointmentId"),
		Notes:          normalize.Str(raw, "notes"),
		CreatedAt:      normalize.Str(raw, "issueDate", "createdAt"),
	}
}
