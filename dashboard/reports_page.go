package dashboard

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/jrsteele09/hostel-admin/reports"
	"golang.org/x/sync/errgroup"
)

// ReportsPage is the admin overview: headline figures and occupancy by
// hostel, fetched together. Either read failing fails the page.
type ReportsPage struct {
	base

	svc       *reports.Service
	overview  *reports.Overview
	occupancy []reports.HostelOccupancy
}

func NewReportsPage(svc *reports.Service, session SessionHandler) *ReportsPage {
	return &ReportsPage{base: base{title: "Overview", session: session}, svc: svc}
}

func (p *ReportsPage) Load(ctx context.Context) error {
	return p.load(ctx, func(ctx context.Context) error {
		var (
			overview  *reports.Overview
			occupancy []reports.HostelOccupancy
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			overview, err = p.svc.GetOverview(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			occupancy, err = p.svc.GetOccupancy(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return err
		}
		p.overview, p.occupancy = overview, occupancy
		return nil
	})
}

func (p *ReportsPage) Render(w io.Writer) error {
	writeHeading(w, p.title)
	if renderState(w, p.state) || p.overview == nil {
		return nil
	}

	o := p.overview
	if err := writeTable(w, []string{"METRIC", "VALUE"}, [][]string{
		{"Students", strconv.Itoa(o.TotalStudents)},
		{"Hostels", strconv.Itoa(o.TotalHostels)},
		{"Rooms", strconv.Itoa(o.TotalRooms)},
		{"Beds occupied", fmt.Sprintf("%d / %d", o.OccupiedBeds, o.TotalBeds)},
		{"Occupancy", percent(o.OccupancyRate)},
		{"Pending applications", strconv.Itoa(o.PendingApplications)},
		{"Open maintenance", strconv.Itoa(o.OpenMaintenance)},
		{"Revenue", money(o.TotalRevenue, "")},
	}); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(w)
	rows := make([][]string, 0, len(p.occupancy))
	for _, h := range p.occupancy {
		rows = append(rows, []string{h.HostelName, strconv.Itoa(h.Capacity), strconv.Itoa(h.Occupied), percent(h.Rate)})
	}
	return writeTable(w, []string{"HOSTEL", "CAPACITY", "OCCUPIED", "RATE"}, rows)
}
