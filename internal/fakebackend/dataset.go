package fakebackend

import (
	"github.com/jrsteele09/hostel-admin/applications"
	"github.com/jrsteele09/hostel-admin/hostels"
	"github.com/jrsteele09/hostel-admin/mailtemplates"
	"github.com/jrsteele09/hostel-admin/maintenance"
	"github.com/jrsteele09/hostel-admin/notifications"
	"github.com/jrsteele09/hostel-admin/payments"
	"github.com/jrsteele09/hostel-admin/roomselection"
	"github.com/jrsteele09/hostel-admin/students"
)

// dataset is the mutable backend state. Guarded by Server.lock.
type dataset struct {
	applications  []applications.Application
	payments      []payments.Payment
	hostels       []hostels.Hostel
	rooms         []hostels.Room
	maintenance   []maintenance.Request
	students      []students.Student
	notifications []notifications.Notification
	sessions      []roomselection.Session
	templates     []mailtemplates.Template
	readBy        map[string]map[string]bool // notification id -> account id
}

func seedDataset() *dataset {
	d := &dataset{
		applications: []applications.Application{
			{ID: "app-1", StudentID: "s-1", StudentName: "Ada Obi", MatricNumber: SeedStudentMatric, HostelID: "h-2", HostelName: "Queen Amina Hall", AcademicSession: "2025/2026", Status: applications.StatusPending, SubmittedAt: "2025-08-14T09:12:00Z"},
			{ID: "app-2", StudentID: "s-2", StudentName: "Tunde Bakare", MatricNumber: "2022/104211", HostelID: "h-1", HostelName: "Independence Hall", AcademicSession: "2025/2026", Status: applications.StatusApproved, SubmittedAt: "2025-08-12T15:40:00Z"},
			{ID: "app-3", StudentID: "s-3", StudentName: "Chioma Eze", MatricNumber: "2023/118734", HostelID: "h-2", HostelName: "Queen Amina Hall", AcademicSession: "2025/2026", Status: applications.StatusPending, SubmittedAt: "2025-08-15T11:05:00Z"},
			{ID: "app-4", StudentID: "s-4", StudentName: "Ibrahim Sani", MatricNumber: "2021/100982", HostelID: "h-1", HostelName: "Independence Hall", AcademicSession: "2025/2026", Status: applications.StatusRejected, RejectionReason: "Outstanding fees", SubmittedAt: "2025-08-10T08:30:00Z"},
		},
		payments: []payments.Payment{
			{ID: "pay-1", StudentID: "s-1", StudentName: "Ada Obi", Amount: 45000, Currency: "NGN", Reference: "RRR-230981", Method: "remita", Status: payments.StatusPending, PaidAt: "2025-08-20T10:00:00Z"},
			{ID: "pay-2", StudentID: "s-2", StudentName: "Tunde Bakare", Amount: 45000, Currency: "NGN", Reference: "RRR-230412", Method: "remita", Status: payments.StatusVerified, PaidAt: "2025-08-18T13:22:00Z"},
			{ID: "pay-3", StudentID: "s-3", StudentName: "Chioma Eze", Amount: 52000, Currency: "NGN", Reference: "BANK-99812", Method: "transfer", Status: payments.StatusFailed, PaidAt: "2025-08-19T16:45:00Z"},
		},
		hostels: []hostels.Hostel{
			{ID: "h-1", Name: "Independence Hall", Code: "IND", Gender: hostels.GenderMale, TotalRooms: 3, AvailableRooms: 1, Capacity: 12, Occupied: 10, Status: "active", WardenName: "Musa Bello"},
			{ID: "h-2", Name: "Queen Amina Hall", Code: "QAH", Gender: hostels.GenderFemale, TotalRooms: 2, AvailableRooms: 1, Capacity: 8, Occupied: 5, Status: "active"},
		},
		rooms: []hostels.Room{
			{ID: "r-1", HostelID: "h-1", Number: "A101", Floor: 1, Type: "quad", Capacity: 4, Occupied: 4, Price: 45000},
			{ID: "r-2", HostelID: "h-1", Number: "A102", Floor: 1, Type: "quad", Capacity: 4, Occupied: 4, Price: 45000},
			{ID: "r-3", HostelID: "h-1", Number: "B201", Floor: 2, Type: "quad", Capacity: 4, Occupied: 2, Price: 45000},
			{ID: "r-4", HostelID: "h-2", Number: "C101", Floor: 1, Type: "quad", Capacity: 4, Occupied: 4, Price: 52000},
			{ID: "r-5", HostelID: "h-2", Number: "C102", Floor: 1, Type: "quad", Capacity: 4, Occupied: 1, Price: 52000},
		},
		maintenance: []maintenance.Request{
			{ID: "m-1", Title: "Leaking shower", Category: "plumbing", Priority: maintenance.PriorityHigh, Status: maintenance.StatusOpen, HostelID: "h-2", RoomID: "r-5", ReportedBy: "s-1", CreatedAt: "2025-09-02T07:45:00Z"},
			{ID: "m-2", Title: "Broken window latch", Category: "carpentry", Priority: maintenance.PriorityLow, Status: maintenance.StatusAssigned, HostelID: "h-1", RoomID: "r-3", ReportedBy: "s-2", AssignedTo: "Works dept", CreatedAt: "2025-09-01T12:10:00Z"},
		},
		students: []students.Student{
			{ID: "s-1", MatricNumber: SeedStudentMatric, FirstName: "Ada", LastName: "Obi", Email: SeedStudentEmail, Department: "Computer Science", Level: "300", HostelID: "h-2", HostelName: "Queen Amina Hall", RoomNumber: "C102", Status: "active"},
			{ID: "s-2", MatricNumber: "2022/104211", FirstName: "Tunde", LastName: "Bakare", Department: "Mechanical Engineering", Level: "200", HostelID: "h-1", HostelName: "Independence Hall", RoomNumber: "B201", Status: "active"},
			{ID: "s-3", MatricNumber: "2023/118734", FirstName: "Chioma", LastName: "Eze", Department: "Law", Level: "100", Status: "active"},
		},
		notifications: []notifications.Notification{
			{ID: "n-1", Title: "Hostel fees deadline", Message: "All hostel fees must be paid by 30 September.", Type: "reminder", Audience: notifications.AudienceStudents, Published: true, CreatedAt: "2025-09-01T08:00:00Z"},
			{ID: "n-2", Title: "Water outage", Message: "Queen Amina Hall will have no water on Saturday 10am to 2pm.", Type: "alert", Audience: notifications.AudienceAll, Published: true, CreatedAt: "2025-09-03T17:30:00Z"},
			{ID: "n-3", Title: "Warden meeting", Message: "Monthly warden meeting on Friday.", Type: "info", Audience: notifications.AudienceAdmins, Published: true, CreatedAt: "2025-09-04T09:00:00Z"},
		},
		sessions: []roomselection.Session{
			{ID: "rs-1", Name: "Returning students 2025/2026", AcademicSession: "2025/2026", HostelIDs: []string{"h-1", "h-2"}, Levels: []string{"200", "300", "400"}, StartsAt: "2025-09-10T08:00:00Z", EndsAt: "2025-09-17T18:00:00Z", Status: roomselection.StatusOpen, Selections: 12},
		},
		templates: []mailtemplates.Template{
			{ID: "t-1", Name: "Application approved", Slug: "application_approved", Subject: "Your hostel application was approved", Body: "Hello {{first_name}}, your application for {{hostel_name}} was approved.", Variables: []string{"first_name", "hostel_name"}, IsActive: true},
			{ID: "t-2", Name: "Payment verified", Slug: "payment_verified", Subject: "Payment {{reference}} verified", Body: "We have verified your payment of {{amount}}.", Variables: []string{"reference", "amount"}, IsActive: true},
		},
		readBy: map[string]map[string]bool{},
	}
	return d
}

// notificationsFor returns the published notifications an account can see,
// with IsRead filled in for that account.
func (d *dataset) notificationsFor(acc *account) []notifications.Notification {
	var out []notifications.Notification
	for _, n := range d.notifications {
		if !n.Published || !visibleTo(n.Audience, acc.Role) {
			continue
		}
		n.IsRead = d.readBy[n.ID][acc.ID]
		out = append(out, n)
	}
	if out == nil {
		out = []notifications.Notification{}
	}
	return out
}

func (d *dataset) markRead(notificationID, accountID string) {
	if d.readBy[notificationID] == nil {
		d.readBy[notificationID] = map[string]bool{}
	}
	d.readBy[notificationID][accountID] = true
}

func visibleTo(audience notifications.Audience, role string) bool {
	switch audience {
	case notifications.AudienceStudents:
		return role == roleStudent
	case notifications.AudienceAdmins:
		return role == roleAdmin || role == roleSuperAdmin
	}
	return true
}

func (d *dataset) applicationStats() applications.Statistics {
	stats := applications.Statistics{Total: len(d.applications)}
	for _, a := range d.applications {
		switch a.Status {
		case applications.StatusPending:
			stats.Pending++
		case applications.StatusApproved:
			stats.Approved++
		case applications.StatusRejected:
			stats.Rejected++
		case applications.StatusAssigned:
			stats.Assigned++
		}
	}
	return stats
}
