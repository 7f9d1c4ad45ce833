package medicine

import "github.com/caredesk/caredesk/internal/platform/normalize"

// Medicine is the caller-facing view of a backend medicine record.
type Medicine struct {
	MedicineID   int     `json:"medicine_id"`
	Name         string  `json:"name"`
	Manufacturer string  `json:"manufacturer"`
	Price        float64 `json:"price"`
	Stock        int     `json:"stock"`
	ExpiryDate   string  `json:"expiry_date"`
	CreatedAt    string  `json:"created_at"`
}

func fromWire(raw map[string]any) Medicine {
	return Medicine{
		MedicineID:   normalize.Int(raw, "id"),
		Name:         normalize.Str(raw, "name"),
		Manufacturer: normalize.Str(raw, "manufacturer"),
		Price:        normalize.Float(raw, "price"),
		Stock:        normalize.Int(raw, "stock", "stockQuantity"),
		ExpiryDate:   normalize.Str(raw, "expiryDate"),
		CreatedAt:    normalize.Str(raw, "createdAt"),
	}
}
