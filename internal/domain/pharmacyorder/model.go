package pharmacyorder

import "github.com/caredesk/caredesk/internal/platform/normalize"

// Order is the caller-facing view of a backend pharmacy order. The backend's
// pharmacyId fills doctor_id so order rows render in the same table component
// as appointments; quantity falls back to totalAmount and the creation time
// to orderDate.
type Order struct {
	PharmacyOrderID int    `json:"pharmacy_order_id"`
	PatientID       int    `json:"patient_id"`
	DoctorID        int    `json:"doctor_id"`
	MedicineID      int    `json:"medicine_id"`
	PatientName     string `json:"patient_name"`
	DoctorName      string `json:"doctor_name"`
	Quantity        int    `json:"quantity"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
	OrderID         string `json:"order_id"`
}

func fromWire(raw map[string]any) Order {
	return Order{
		PharmacyOrderID: normalize.Int(raw, "id"),
		PatientID:       normalize.Int(raw, "patientId", "patient.id"),
		DoctorID:        normalize.Int(raw, "pharmacyId"),
		MedicineID:      normalize.Int(raw, "medicineId"),
		PatientName:     normalize.FullName(raw, "patient.user.firstName", "patient.user.lastName"),
		DoctorName:      normalize.Str(raw, "pharmacy.name", "doctor.name"),
		Quantity:        normalize.Int(raw, "quantity", "totalAmount"),
		Status:          normalize.Str(raw, "status"),
		CreatedAt:       normalize.Str(raw, "createdAt", "orderDate"),
		OrderID:         normalize.Str(raw, "OrderId"),
	}
}
