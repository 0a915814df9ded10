package reports

import "net/url"

// Overview is the headline numbers on the admin home page.
type Overview struct {
	TotalStudents       int     `json:"total_students"`
	TotalHostels        int     `json:"total_hostels"`
	TotalRooms          int     `json:"total_rooms"`
	TotalBeds           int     `json:"total_beds"`
	OccupiedBeds        int     `json:"occupied_beds"`
	OccupancyRate       float64 `json:"occupancy_rate"`
	PendingApplications int     `json:"pending_applications"`
	OpenMaintenance     int     `json:"open_maintenance"`
	TotalRevenue        float64 `json:"total_revenue"`
}

type HostelOccupancy struct {
	HostelID   string  `json:"hostel_id"`
	HostelName string  `json:"hostel_name"`
	Capacity   int     `json:"capacity"`
	Occupied   int     `json:"occupied"`
	Rate       float64 `json:"occupancy_rate"`
}

type RevenuePoint struct {
	Period string  `json:"period"` // 2025-09, 2025-W37...
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
}

type Revenue struct {
	Total  float64        `json:"total"`
	Points []RevenuePoint `json:"breakdown"`
}

// RevenueParams bound and bucket the revenue report. Dates are YYYY-MM-DD.
type RevenueParams struct {
	From    string
	To      string
	GroupBy string // day, week or month
}

func (p RevenueParams) query() url.Values {
	q := url.Values{}
	if p.From != "" {
		q.Set("from", p.From)
	}
	if p.To != "" {
		q.Set("to", p.To)
	}
	if p.GroupBy != "" {
		q.Set("group_by", p.GroupBy)
	}
	return q
}

// Kind names an exportable report.
type Kind string

const (
	KindOccupancy    Kind = "occupancy"
	KindRevenue      Kind = "revenue"
	KindApplications Kind = "applications"
	KindMaintenance  Kind = "maintenance"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)
