package dashboard

import (
	"context"
	"fmt"
	"io"

	"github.com/jrsteele09/hostel-admin/apiclient"
	"github.com/jrsteele09/hostel-admin/students"
)

// StudentHomePage is the student dashboard. Sections whose read failed show a
// placeholder; the page itself only fails when every read was rejected as
// unauthenticated.
type StudentHomePage struct {
	base

	svc  *students.Service
	data *students.DashboardData
}

func NewStudentHomePage(svc *students.Service, session SessionHandler) *StudentHomePage {
	return &StudentHomePage{base: base{title: "My hostel", session: session}, svc: svc}
}

func (p *StudentHomePage) Load(ctx context.Context) error {
	return p.load(ctx, func(ctx context.Context) error {
		data := p.svc.GetDashboardData(ctx)
		if err, ok := data.Failed[students.ReadProfile]; ok && apiclient.IsUnauthorized(err) {
			return err
		}
		p.data = data
		return nil
	})
}

func (p *StudentHomePage) Data() *students.DashboardData {
	return p.data
}

func (p *StudentHomePage) Render(w io.Writer) error {
	writeHeading(w, p.title)
	if renderState(w, p.state) || p.data == nil {
		return nil
	}
	d := p.data

	if d.Profile != nil {
		_, _ = fmt.Fprintf(w, "%s %s (%s)\n", d.Profile.FirstName, d.Profile.LastName, d.Profile.MatricNumber)
		if d.Profile.HostelName != "" {
			_, _ = fmt.Fprintf(w, "Room %s, %s\n", orDash(d.Profile.RoomNumber), d.Profile.HostelName)
		}
	} else {
		_, _ = fmt.Fprintln(w, "Profile unavailable")
	}

	switch {
	case d.Application != nil:
		_, _ = fmt.Fprintf(w, "Application: %s\n", d.Application.Status)
	case d.Failed[students.ReadApplication] != nil:
		_, _ = fmt.Fprintln(w, "Application: unavailable")
	default:
		_, _ = fmt.Fprintln(w, "Application: not submitted")
	}

	_, _ = fmt.Fprintln(w, "\nPayments")
	rows := make([][]string, 0, len(d.Payments))
	for _, pay := range d.Payments {
		rows = append(rows, []string{pay.ID, money(pay.Amount, pay.Currency), string(pay.Status), orDash(pay.PaidAt)})
	}
	if err := writeTable(w, []string{"ID", "AMOUNT", "STATUS", "PAID AT"}, rows); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(w, "\nNotifications")
	rows = rows[:0]
	for _, n := range d.Notifications {
		rows = append(rows, []string{n.ID, n.Title, yesNo(n.IsRead)})
	}
	if err := writeTable(w, []string{"ID", "TITLE", "READ"}, rows); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(w, "\nMaintenance")
	rows = rows[:0]
	for _, m := range d.Maintenance {
		rows = append(rows, []string{m.ID, m.Title, string(m.Status)})
	}
	if err := writeTable(w, []string{"ID", "TITLE", "STATUS"}, rows); err != nil {
		return err
	}

	if d.Degraded() {
		_, _ = fmt.Fprintf(w, "\n%d section(s) could not be loaded.\n", len(d.Failed))
	}
	return nil
}
