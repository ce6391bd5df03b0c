package entity

import "strings"

// AppointmentStatus represents the lifecycle state of an appointment.
// The set of values is closed but the transition graph is deliberately open:
// any caller may move an appointment to any known status.
type AppointmentStatus string

const (
	// StatusPending is the initial state of every new appointment.
	StatusPending AppointmentStatus = "PENDING"
	// StatusConfirmed means the booking was accepted.
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	// StatusCompleted means the visit took place. Only completed
	// appointments count toward report revenue.
	StatusCompleted AppointmentStatus = "COMPLETED"
	// StatusCancelled means the booking was called off.
	StatusCancelled AppointmentStatus = "CANCELLED"
)

// String returns the string representation of the status.
func (s AppointmentStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a known value.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// ParseAppointmentStatus converts a string to an AppointmentStatus, ignoring
// case. The second return value reports whether the input named a known status.
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	status := AppointmentStatus(strings.ToUpper(strings.TrimSpace(s)))

	return status, status.IsValid()
}
