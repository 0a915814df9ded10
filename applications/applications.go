package applications

import (
	"encoding/json"

	"github.com/jrsteele09/hostel-admin/apiclient"
)

// Status is the review state of a hostel application.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusAssigned Status = "assigned"
)

type Application struct {
	ID              string          `json:"id"`
	StudentID       string          `json:"student_id,omitempty"`
	StudentName     string          `json:"student_name,omitempty"`
	MatricNumber    string          `json:"matric_number,omitempty"`
	HostelID        string          `json:"hostel_id,omitempty"`
	HostelName      string          `json:"hostel_name,omitempty"`
	RoomID          string          `json:"room_id,omitempty"`
	AcademicSession string          `json:"academic_session,omitempty"` // e.g. 2025/2026
	Status          Status          `json:"status"`
	Note            string          `json:"note,omitempty"`             // Reviewer note on approval
	RejectionReason string          `json:"rejection_reason,omitempty"` // Shown to the student
	SubmittedAt     string          `json:"submitted_at,omitempty"`
	ReviewedAt      string          `json:"reviewed_at,omitempty"`
	Meta            json.RawMessage `json:"meta,omitempty"`
}

// Statistics counts applications by status across the whole collection.
type Statistics struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Assigned int `json:"assigned"`
}

// ApplicationList is the data object of GET /admin/applications, kept as the
// backend sent it.
type ApplicationList struct {
	Applications []Application        `json:"applications"`
	Statistics   Statistics           `json:"statistics"`
	Pagination   apiclient.Pagination `json:"pagination"`
}

// Input is the body for create and update.
type Input struct {
	StudentID       string `json:"student_id,omitempty"`
	HostelID        string `json:"hostel_id,omitempty"`
	RoomID          string `json:"room_id,omitempty"`
	AcademicSession string `json:"academic_session,omitempty"`
	Status          Status `json:"status,omitempty"`
}
