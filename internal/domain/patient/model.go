package patient

import "github.com/caredesk/caredesk/internal/platform/normalize"

// Patient is the caller-facing view of a backend patient record.
type Patient struct {
	PatientID   int    `json:"patient_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"date_of_birth"`
	Address     string `json:"address"`
	CreatedAt   string `json:"created_at"`
}

func fromWire(raw map[string]any) Patient {
	return Patient{
		PatientID:   normalize.Int(raw, "id"),
		Name:        normalize.FullName(raw, "user.firstName", "user.lastName"),
		Email:       normalize.Str(raw, "user.email", "email"),
		Phone:       normalize.Str(raw, "phone", "user.phone"),
		Gender:      normalize.Str(raw, "gender"),
		DateOfBirth: normalize.Str(raw, "dateOfBirth"),
		Address:     normalize.Str(raw, "address"),
		CreatedAt:   normalize.Str(raw, "createdAt"),
	}
}
