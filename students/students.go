package students

import (
	"github.com/jrsteele09/hostel-admin/applications"
	"github.com/jrsteele09/hostel-admin/maintenance"
	"github.com/jrsteele09/hostel-admin/notifications"
	"github.com/jrsteele09/hostel-admin/payments"
)

type Student struct {
	ID           string `json:"id"`
	MatricNumber string `json:"matric_number"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Gender       string `json:"gender,omitempty"`
	Faculty      string `json:"faculty,omitempty"`
	Department   string `json:"department,omitempty"`
	Level        string `json:"level,omitempty"`
	HostelID     string `json:"hostel_id,omitempty"`
	HostelName   string `json:"hostel_name,omitempty"`
	RoomNumber   string `json:"room_number,omitempty"`
	Status       string `json:"status,omitempty"`
}

type Input struct {
	MatricNumber string `json:"matric_number,omitempty"`
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Gender       string `json:"gender,omitempty"`
	Faculty      string `json:"faculty,omitempty"`
	Department   string `json:"department,omitempty"`
	Level        string `json:"level,omitempty"`
	Status       string `json:"status,omitempty"`
}

// Names of the reads behind the student dashboard.
const (
	ReadProfile       = "profile"
	ReadApplication   = "application"
	ReadPayments      = "payments"
	ReadNotifications = "notifications"
	ReadMaintenance   = "maintenance"
)

// DashboardData is everything the student home page shows. A read that
// failed holds its placeholder and its error is kept in Failed.
type DashboardData struct {
	Profile       *Student                     `json:"profile"`     // nil when unavailable
	Application   *applications.Application    `json:"application"` // nil when none or unavailable
	Payments      []payments.Payment           `json:"payments"`
	Notifications []notifications.Notification `json:"notifications"`
	Maintenance   []maintenance.Request        `json:"maintenance"`
	Failed        map[string]error             `json:"-"`
}

// Degraded reports whether any read fell back to its placeholder.
func (d *DashboardData) Degraded() bool {
	return len(d.Failed) > 0
}
