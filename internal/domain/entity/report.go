package entity

// Report represents one saved management report snapshot.
type Report struct {
	ID                string  // Prefixed sequence identifier, e.g. "R001".
	Title             string  // Short title for the report.
	GeneratedBy       string  // User id of the person who generated this report.
	GeneratedAt       string  // Local date-time in ISO format, e.g. "2025-08-21T18:00".
	TotalAppointments int     // Number of appointments at generation time.
	TotalRevenue      float64 // Sum of charges of completed appointments.
}
