package entity

// Payment represents one payment made against an appointment.
type Payment struct {
	ID            string        // Prefixed sequence identifier, e.g. "P001".
	AppointmentID string        // Appointment id this payment settles, e.g. "A001".
	Amount        float64       // Amount paid.
	Method        PaymentMethod // How the payment was made.
	Timestamp     string        // Local date-time in ISO format, e.g. "2025-08-20T15:10".
}
