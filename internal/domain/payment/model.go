package payment

import "github.com/caredesk/caredesk/internal/platform/normalize"

// Payment is the caller-facing view of a backend payment record. The backend
// names the appointment reference relatedEntityId and the paying patient
// userId; numeric fields default to 0 when absent.
type Payment struct {
	PaymentID       int     `json:"payment_id"`
	AppointmentID   int     `json:"appointment_id"`
	PatientID       int     `json:"patient_id"`
	PaymentMethod   string  `json:"payment_method"`
	PharmacyOrderID int     `json:"pharmacy_order_id"`
	Amount          float64 `json:"amount"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at"`
}

func fromWire(raw map[string]any) Payment {
	return Payment{
		PaymentID:       normalize.Int(raw, "id"),
		AppointmentID:   normalize.Int(raw, "relatedEntityId"),
		PatientID:       normalize.Int(raw, "userId"),
		PaymentMethod:   normalize.Str(raw, "paymentMethod"),
		PharmacyOrderID: normalize.Int(raw, "orderId"),
		Amount:          normalize.Float(raw, "amount"),
		Status:          normalize.Str(raw, "status"),
		CreatedAt:       normalize.Str(raw, "createdAt"),
	}
}
