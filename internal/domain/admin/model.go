package admin

// OrderStats breaks pharmacy orders down by status. Counts are derived
// client-side from the order list, not trusted from the backend.
type OrderStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

// PaymentStats summarizes the payments slice.
type PaymentStats struct {
	Total     int     `json:"total"`
	Collected float64 `json:"collected"`
}

// Stats is the admin dashboard summary. Every slice degrades to its zero
// value independently when its sub-fetch fails.
type Stats struct {
	Appointments int          `json:"appointments"`
	Doctors      int          `json:"doctors"`
	Patients     int          `json:"patients"`
	Payments     PaymentStats `json:"payments"`
	Orders       OrderStats   `json:"orders"`
}

// Activity is one row of the recent-activity feed.
type Activity struct {
	Kind        string `json:"kind"`
	Description string `json:"description"`
	Status      string `json:"status"`
	OccurredAt  string `json:"occurred_at"`
}
