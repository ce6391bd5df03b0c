package entity

// Appointment represents one booking between a customer and a doctor.
// CustomerID and DoctorID reference User records but are not validated at
// write time; readers must tolerate dangling references and render missing
// lookups as "Unknown".
type Appointment struct {
	ID         string            // Prefixed sequence identifier, e.g. "A001".
	CustomerID string            // User id of the customer, e.g. "U300".
	DoctorID   string            // User id of the doctor, e.g. "U200".
	DateTime   string            // Local date-time in ISO format, e.g. "2025-08-20T14:30". No timezone.
	Status     AppointmentStatus // Current status of the booking.
	Charge     float64           // Total charge. 0.0 when not set yet.
	Notes      string            // Optional free-text notes.
	CreatedBy  string            // Id of the user who created this appointment.
}
