package record

import "github.com/caredesk/caredesk/internal/platform/normalize"

// Record is the caller-facing view of a backend medical record.
type Record struct {
	RecordID      int    `json:"record_id"`
	PatientID     int    `json:"patient_id"`
	DoctorID      int    `json:"doctor_id"`
	AppointmentID int    `json:"appointment_id"`
	Diagnosis     string `json:"diagnosis"`
	Notes         string `json:"notes"`
	CreatedAt     string `json:"created_at"`
}

func fromWire(raw map[string]any) Record {
	return Record{
		RecordID:      normalize.Int(raw, "id"),
		PatientID:     normalize.Int(raw, "patientId", "patient.id"),
		DoctorID:      normalize.Int(raw, "doctorId", "doctor.id"),
		AppointmentID: normalize.Int(raw, "appointmentId"),
		Diagnosis:     normalize.Str(raw, "diagnosis"),
		Notes:         normalize.Str(raw, "notes"),
		CreatedAt:     normalize.Str(raw, "recordDate", "createdAt"),
	}
}
