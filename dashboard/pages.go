package dashboard

import (
	"strconv"

	"github.com/jrsteele09/hostel-admin/hostels"
	"github.com/jrsteele09/hostel-admin/mailtemplates"
	"github.com/jrsteele09/hostel-admin/maintenance"
	"github.com/jrsteele09/hostel-admin/notifications"
	"github.com/jrsteele09/hostel-admin/payments"
	"github.com/jrsteele09/hostel-admin/roomselection"
	"github.com/jrsteele09/hostel-admin/students"
)

func NewPaymentsPage(svc *payments.Service, session SessionHandler) *ListPage[payments.Payment] {
	return newListPage("Payments", session, svc.GetAll,
		[]string{"ID", "STUDENT", "AMOUNT", "REFERENCE", "STATUS", "PAID AT"},
		func(p payments.Payment) []string {
			return []string{p.ID, orDash(p.StudentName), money(p.Amount, p.Currency), orDash(p.Reference), string(p.Status), orDash(p.PaidAt)}
		})
}

func NewHostelsPage(svc *hostels.Service, session SessionHandler) *ListPage[hostels.Hostel] {
	return newListPage("Hostels", session, svc.GetAll,
		[]string{"ID", "NAME", "GENDER", "ROOMS", "FREE ROOMS", "OCCUPANCY"},
		func(h hostels.Hostel) []string {
			return []string{h.ID, h.Name, orDash(string(h.Gender)), strconv.Itoa(h.TotalRooms), strconv.Itoa(h.AvailableRooms), percent(h.OccupancyRate())}
		})
}

func NewMaintenancePage(svc *maintenance.Service, session SessionHandler) *ListPage[maintenance.Request] {
	return newListPage("Maintenance requests", session, svc.GetAll,
		[]string{"ID", "TITLE", "PRIORITY", "STATUS", "ASSIGNED TO", "CREATED"},
		func(r maintenance.Request) []string {
			return []string{r.ID, r.Title, orDash(string(r.Priority)), string(r.Status), orDash(r.AssignedTo), orDash(r.CreatedAt)}
		})
}

func NewNotificationsPage(svc *notifications.Service, session SessionHandler) *ListPage[notifications.Notification] {
	return newListPage("Notifications", session, svc.GetAll,
		[]string{"ID", "TITLE", "AUDIENCE", "PUBLISHED", "READ"},
		func(n notifications.Notification) []string {
			return []string{n.ID, n.Title, orDash(string(n.Audience)), yesNo(n.Published), yesNo(n.IsRead)}
		})
}

func NewRoomSelectionPage(svc *roomselection.Service, session SessionHandler) *ListPage[roomselection.Session] {
	return newListPage("Room selection sessions", session, svc.GetAll,
		[]string{"ID", "NAME", "SESSION", "STATUS", "OPENS", "CLOSES", "SELECTIONS"},
		func(s roomselection.Session) []string {
			return []string{s.ID, s.Name, orDash(s.AcademicSession), string(s.Status), orDash(s.StartsAt), orDash(s.EndsAt), strconv.Itoa(s.Selections)}
		})
}

func NewStudentsPage(svc *students.Service, session SessionHandler) *ListPage[students.Student] {
	return newListPage("Students", session, svc.GetAll,
		[]string{"ID", "MATRIC NO", "NAME", "LEVEL", "HOSTEL", "ROOM"},
		func(s students.Student) []string {
			return []string{s.ID, s.MatricNumber, s.FirstName + " " + s.LastName, orDash(s.Level), orDash(s.HostelName), orDash(s.RoomNumber)}
		})
}

func NewMailTemplatesPage(svc *mailtemplates.Service, session SessionHandler) *ListPage[mailtemplates.Template] {
	return newListPage("Mail templates", session, svc.GetAll,
		[]string{"ID", "NAME", "EVENT", "SUBJECT", "ACTIVE"},
		func(t mailtemplates.Template) []string {
			return []string{t.ID, t.Name, t.Slug, t.Subject, yesNo(t.IsActive)}
		})
}
