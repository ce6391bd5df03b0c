package handler

import "clinic/internal/domain/entity"

// userView is the wire shape of a user. The password hash never leaves the
// service.
type userView struct {
	ID      string `json:"userId"`
	Role    string `json:"role"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func newUserView(user *entity.User) userView {
	return userView{
		ID:      user.ID,
		Role:    user.Role.String(),
		Name:    user.Name,
		Email:   user.Email,
		Phone:   user.Phone,
		Address: user.Address,
	}
}

func newUserViews(users []entity.User) []userView {
	views := make([]userView, 0, len(users))
	for i := range users {
		views = append(views, newUserView(&users[i]))
	}

	return views
}

type sessionView struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	User         userView `json:"user"`
}

type appointmentView struct {
	ID         string  `json:"appointmentId"`
	CustomerID string  `json:"customerId"`
	DoctorID   string  `json:"doctorId"`
	DateTime   string  `json:"dateTime"`
	Status     string  `json:"status"`
	Charge     float64 `json:"charge"`
	Notes      string  `json:"notes"`
	CreatedBy  string  `json:"createdBy"`
}

func newAppointmentView(appointment *entity.Appointment) appointmentView {
	return appointmentView{
		ID:         appointment.ID,
		CustomerID: appointment.CustomerID,
		DoctorID:   appointment.DoctorID,
		DateTime:   appointment.DateTime,
		Status:     appointment.Status.String(),
		Charge:     appointment.Charge,
		Notes:      appointment.Notes,
		CreatedBy:  appointment.CreatedBy,
	}
}

func newAppointmentViews(appointments []entity.Appointment) []appointmentView {
	views := make([]appointmentView, 0, len(appointments))
	for i := range appointments {
		views = append(views, newAppointmentView(&appointments[i]))
	}

	return views
}

type paymentView struct {
	ID            string  `json:"paymentId"`
	AppointmentID string  `json:"appointmentId"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	Timestamp     string  `json:"timestamp"`
}

func newPaymentView(payment *entity.Payment) paymentView {
	return paymentView{
		ID:            payment.ID,
		AppointmentID: payment.AppointmentID,
		Amount:        payment.Amount,
		Method:        payment.Method.String(),
		Timestamp:     payment.Timestamp,
	}
}

func newPaymentViews(payments []entity.Payment) []paymentView {
	views := make([]paymentView, 0, len(payments))
	for i := range payments {
		views = append(views, newPaymentView(&payments[i]))
	}

	return views
}

type feedbackView struct {
	ID            string `json:"feedbackId"`
	FromUserID    string `json:"fromUserId"`
	ToUserID      string `json:"toUserId"`
	AppointmentID string `json:"appointmentId"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
	Timestamp     string `json:"timestamp"`
}

func newFeedbackView(feedback *entity.Feedback) feedbackView {
	return feedbackView{
		ID:            feedback.ID,
		FromUserID:    feedback.FromUserID,
		ToUserID:      feedback.ToUserID,
		AppointmentID: feedback.AppointmentID,
		Rating:        feedback.Rating,
		Comment:       feedback.Comment,
		Timestamp:     feedback.Timestamp,
	}
}

func newFeedbackViews(feedback []entity.Feedback) []feedbackView {
	views := make([]feedbackView, 0, len(feedback))
	for i := range feedback {
		views = append(views, newFeedbackView(&feedback[i]))
	}

	return views
}

type reportView struct {
	ID                string  `json:"reportId"`
	Title             string  `json:"title"`
	GeneratedBy       string  `json:"generatedBy"`
	GeneratedAt       string  `json:"generatedAt"`
	TotalAppointments int     `json:"totalAppointments"`
	TotalRevenue      float64 `json:"totalRevenue"`
}

func newReportView(report *entity.Report) reportView {
	return reportView{
		ID:                report.ID,
		Title:             report.Title,
		GeneratedBy:       report.GeneratedBy,
		GeneratedAt:       report.GeneratedAt,
		TotalAppointments: report.TotalAppointments,
		TotalRevenue:      report.TotalRevenue,
	}
}

func newReportViews(reports []entity.Report) []reportView {
	views := make([]reportView, 0, len(reports))
	for i := range reports {
		views = append(views, newReportView(&reports[i]))
	}

	return views
}
