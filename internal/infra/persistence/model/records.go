// Package model defines the on-disk JSON shape of every stored record.
// The key names are part of the persisted data contract and must keep the
// exact camelCase spelling below so existing data files stay readable.
package model

// UserRecord mirrors one element of userData.json.
// The password key historically held plaintext; it now holds a bcrypt hash.
type UserRecord struct {
	UserID       string `json:"userId"`
	Role         string `json:"role"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	PasswordHash string `json:"password"`
}

// AppointmentRecord mirrors one element of appointmentData.json.
type AppointmentRecord struct {
	AppointmentID string  `json:"appointmentId"`
	CustomerID    string  `json:"customerId"`
	DoctorID      string  `json:"doctorId"`
	DateTimeIso   string  `json:"dateTimeIso"`
	Status        string  `json:"status"`
	Charge        float64 `json:"charge"`
	Notes         string  `json:"notes"`
	CreatedBy     string  `json:"createdBy"`
}

// PaymentRecord mirrors one element of paymentData.json.
type PaymentRecord struct {
	PaymentID     string  `json:"paymentId"`
	AppointmentID string  `json:"appointmentId"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	TimestampIso  string  `json:"timestampIso"`
}

// FeedbackRecord mirrors one element of feedbackData.json.
type FeedbackRecord struct {
	FeedbackID    string `json:"feedbackId"`
	FromUserID    string `json:"fromUserId"`
	ToUserID      string `json:"toUserId"`
	AppointmentID string `json:"appointmentId"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
	TimestampIso  string `json:"timestampIso"`
}

// ReportRecord mirrors one element of reportData.json.
type ReportRecord struct {
	ReportID          string  `json:"reportId"`
	Title             string  `json:"title"`
	GeneratedByUserID string  `json:"generatedByUserId"`
	GeneratedAtIso    string  `json:"generatedAtIso"`
	TotalAppointments int     `json:"totalAppointments"`
	TotalRevenue      float64 `json:"totalRevenue"`
}
