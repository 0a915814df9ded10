package dashboard

import (
	"context"
	"fmt"
	"io"

	"github.com/jrsteele09/hostel-admin/apiclient"
	"github.com/jrsteele09/hostel-admin/applications"
)

// ApplicationsPage shows the application queue with its status counts.
type ApplicationsPage struct {
	base
	Params apiclient.ListParams

	svc  *applications.Service
	data *applications.ApplicationList
}

func NewApplicationsPage(svc *applications.Service, session SessionHandler) *ApplicationsPage {
	return &ApplicationsPage{base: base{title: "Hostel applications", session: session}, svc: svc}
}

func (p *ApplicationsPage) Load(ctx context.Context) error {
	return p.load(ctx, func(ctx context.Context) error {
		data, err := p.svc.GetAll(ctx, p.Params)
		if err != nil {
			return err
		}
		p.data = data
		return nil
	})
}

func (p *ApplicationsPage) Data() *applications.ApplicationList {
	return p.data
}

func (p *ApplicationsPage) Render(w io.Writer) error {
	writeHeading(w, p.title)
	if renderState(w, p.state) || p.data == nil {
		return nil
	}

	s := p.data.Statistics
	_, _ = fmt.Fprintf(w, "Total %d | Pending %d | Approved %d | Rejected %d | Assigned %d\n\n",
		s.Total, s.Pending, s.Approved, s.Rejected, s.Assigned)

	rows := make([][]string, 0, len(p.data.Applications))
	for _, a := range p.data.Applications {
		rows = append(rows, []string{a.ID, orDash(a.StudentName), orDash(a.MatricNumber), orDash(a.HostelName), string(a.Status), orDash(a.SubmittedAt)})
	}
	if err := writeTable(w, []string{"ID", "STUDENT", "MATRIC NO", "HOSTEL", "STATUS", "SUBMITTED"}, rows); err != nil {
		return err
	}
	writePagination(w, p.data.Pagination)
	return nil
}
