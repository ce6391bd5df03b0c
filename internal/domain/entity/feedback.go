package entity

// Feedback represents one rating a customer left for a doctor after a visit.
type Feedback struct {
	ID            string // Prefixed sequence identifier, e.g. "F001".
	FromUserID    string // Id of the user who wrote the feedback, usually a customer.
	ToUserID      string // Id of the user the feedback is about, usually a doctor.
	AppointmentID string // The related appointment id, e.g. "A001".
	Rating        int    // Rating value from 1 to 5 inclusive.
	Comment       string // Comment text about the visit. Never empty.
	Timestamp     string // Local date-time in ISO format, e.g. "2025-08-21T10:00".
}
