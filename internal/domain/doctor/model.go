package doctor

import "github.com/caredesk/caredesk/internal/platform/normalize"

// Doctor is the caller-facing view of a backend doctor record. The backend
// nests identity under user and sends available days as an array; callers see
// a display name and a comma-joined availability string.
type Doctor struct {
	DoctorID        int     `json:"doctor_id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Specialization  string  `json:"specialization"`
	LicenseNumber   string  `json:"license_number"`
	ConsultationFee float64 `json:"consultation_fee"`
	Availability    string  `json:"availability"`
}

func fromWire(raw map[string]any) Doctor {
	return Doctor{
		DoctorID:        normalize.Int(raw, "id"),
		Name:            normalize.FullName(raw, "user.firstName", "user.lastName"),
		Email:           normalize.Str(raw, "user.email", "email"),
		Specialization:  normalize.Str(raw, "specialization"),
		LicenseNumber:   normalize.Str(raw, "licenseNumber"),
		ConsultationFee: normalize.Float(raw, "consultationFee"),
		Availability:    normalize.Join(raw, ", ", "availableDays"),
	}
}
