package fakebackend

import (
	"net/http"
	"strconv"
	"time"

	"github.com/jrsteele09/hostel-admin/applications"
	"github.com/jrsteele09/hostel-admin/hostels"
	"github.com/jrsteele09/hostel-admin/maintenance"
	"github.com/jrsteele09/hostel-admin/payments"
	"github.com/jrsteele09/hostel-admin/reports"
)

const defaultPerPage = 15

// ApplicationsListHandler answers the nested shape with statistics over the
// whole collection, filtered by ?status=.
func (s *Server) ApplicationsListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := applications.Status(r.URL.Query().Get("status"))
		page, perPage := paging(r, "per_page", defaultPerPage)

		s.lock.Lock()
		defer s.lock.Unlock()
		filtered := filter(s.data.applications, func(a applications.Application) bool {
			return status == "" || a.Status == status
		})
		items, pagination := paginate(filtered, page, perPage)
		writeData(w, map[string]any{
			"applications": items,
			"statistics":   s.data.applicationStats(),
			"pagination":   pagination,
		})
	}
}

type reviewRequest struct {
	Note   string `json:"note"`
	Reason string `json:"reason"`
}

func (s *Server) ApplicationReviewHandler(approve bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reviewRequest
		if r.ContentLength != 0 {
			if err := decodeBody(r, &req); err != nil {
				writeMessage(w, http.StatusBadRequest, "Malformed request body.")
				return
			}
		}
		if !approve && req.Reason == "" {
			writeValidation(w, map[string]string{"reason": "The reason field is required."})
			return
		}

		s.lock.Lock()
		defer s.lock.Unlock()
		i := indexOf(s.data.applications, func(a applications.Application) bool { return a.ID == r.PathValue("id") })
		if i < 0 {
			writeMessage(w, http.StatusNotFound, "Application not found")
			return
		}
		app := &s.data.applications[i]
		if app.Status != applications.StatusPending {
			writeMessage(w, http.StatusConflict, "Application has already been reviewed")
			return
		}
		if approve {
			app.Status, app.Note = applications.StatusApproved, req.Note
		} else {
			app.Status, app.RejectionReason = applications.StatusRejected, req.Reason
		}
		app.ReviewedAt = s.now().UTC().Format(time.RFC3339)
		writeData(w, app)
	}
}

// PaymentsListHandler answers the flat {data, total, page, limit, totalPages}
// shape without an envelope.
func (s *Server) PaymentsListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := payments.Status(r.URL.Query().Get("status"))
		page, limit := paging(r, "limit", defaultPerPage)

		s.lock.Lock()
		defer s.lock.Unlock()
		filtered := filter(s.data.payments, func(p payments.Payment) bool {
			return status == "" || p.Status == status
		})
		items, pagination := paginate(filtered, page, limit)
		writeJSON(w, http.StatusOK, map[string]any{
			"data":       items,
			"total":      pagination.Total,
			"page":       pagination.CurrentPage,
			"limit":      pagination.PerPage,
			"totalPages": pagination.LastPage,
		})
	}
}

func (s *Server) HostelsListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, perPage := paging(r, "per_page", defaultPerPage)

		s.lock.Lock()
		defer s.lock.Unlock()
		items, pagination := paginate(s.data.hostels, page, perPage)
		writeData(w, map[string]any{"hostels": items, "pagination": pagination})
	}
}

func (s *Server) HostelRoomsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		s.lock.Lock()
		defer s.lock.Unlock()
		if indexOf(s.data.hostels, func(h hostels.Hostel) bool { return h.ID == id }) < 0 {
			writeMessage(w, http.StatusNotFound, "Hostel not found")
			return
		}
		writeData(w, filter(s.data.rooms, func(room hostels.Room) bool { return room.HostelID == id }))
	}
}

// nestedList serves a read-only collection in the nested envelope shape.
func nestedList[T any](s *Server, itemsKey string, items func(*dataset) []T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, perPage := paging(r, "per_page", defaultPerPage)

		s.lock.Lock()
		defer s.lock.Unlock()
		pageItems, pagination := paginate(items(s.data), page, perPage)
		writeData(w, map[string]any{itemsKey: pageItems, "pagination": pagination})
	}
}

func (s *Server) ReportsOverviewHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.lock.Lock()
		defer s.lock.Unlock()

		overview := reports.Overview{
			TotalStudents: len(s.data.students),
			TotalHostels:  len(s.data.hostels),
			TotalRooms:    len(s.data.rooms),
		}
		for _, h := range s.data.hostels {
			overview.TotalBeds += h.Capacity
			overview.OccupiedBeds += h.Occupied
		}
		if overview.TotalBeds > 0 {
			overview.OccupancyRate = float64(overview.OccupiedBeds) * 100 / float64(overview.TotalBeds)
		}
		overview.PendingApplications = s.data.applicationStats().Pending
		for _, m := range s.data.maintenance {
			if m.Status != maintenance.StatusResolved && m.Status != maintenance.StatusClosed {
				overview.OpenMaintenance++
			}
		}
		for _, p := range s.data.payments {
			if p.Status == payments.StatusVerified {
				overview.TotalRevenue += p.Amount
			}
		}
		writeData(w, overview)
	}
}

func (s *Server) ReportsOccupancyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.lock.Lock()
		defer s.lock.Unlock()

		out := make([]reports.HostelOccupancy, 0, len(s.data.hostels))
		for _, h := range s.data.hostels {
			out = append(out, reports.HostelOccupancy{
				HostelID:   h.ID,
				HostelName: h.Name,
				Capacity:   h.Capacity,
				Occupied:   h.Occupied,
				Rate:       h.OccupancyRate(),
			})
		}
		writeData(w, out)
	}
}

func (s *Server) NotificationsListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, perPage := paging(r, "per_page", defaultPerPage)

		s.lock.Lock()
		defer s.lock.Unlock()
		items, pagination := paginate(s.data.notificationsFor(sessionFrom(r).account), page, perPage)
		writeData(w, map[string]any{"notifications": items, "pagination": pagination})
	}
}

func (s *Server) NotificationReadHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		s.lock.Lock()
		defer s.lock.Unlock()
		acc := sessionFrom(r).account
		for _, n := range s.data.notificationsFor(acc) {
			if n.ID == id {
				s.data.markRead(id, acc.ID)
				n.IsRead = true
				writeData(w, n)
				return
			}
		}
		writeMessage(w, http.StatusNotFound, "Notification not found")
	}
}

func (s *Server) NotificationsReadAllHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.lock.Lock()
		defer s.lock.Unlock()
		acc := sessionFrom(r).account
		updated := 0
		for _, n := range s.data.notificationsFor(acc) {
			if !n.IsRead {
				s.data.markRead(n.ID, acc.ID)
				updated++
			}
		}
		writeData(w, map[string]int{"updated": updated})
	}
}

func (s *Server) NotificationsUnreadCountHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.lock.Lock()
		defer s.lock.Unlock()
		count := 0
		for _, n := range s.data.notificationsFor(sessionFrom(r).account) {
			if !n.IsRead {
				count++
			}
		}
		writeData(w, map[string]int{"count": count})
	}
}

func (s *Server) StudentSelfProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.lock.Lock()
		defer s.lock.Unlock()
		acc := sessionFrom(r).account
		for _, st := range s.data.students {
			if st.ID == acc.ID {
				writeData(w, st)
				return
			}
		}
		writeMessage(w, http.StatusNotFound, "Student record not found")
	}
}

// StudentSelfApplicationHandler answers 404 when the student has not applied.
func (s *Server) StudentSelfApplicationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.lock.Lock()
		defer s.lock.Unlock()
		acc := sessionFrom(r).account
		for _, a := range s.data.applications {
			if a.StudentID == acc.ID {
				writeData(w, a)
				return
			}
		}
		writeMessage(w, http.StatusNotFound, "No application found")
	}
}

func (s *Server) StudentSelfPaymentsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.lock.Lock()
		defer s.lock.Unlock()
		id := sessionFrom(r).account.ID
		writeData(w, filter(s.data.payments, func(p payments.Payment) bool { return p.StudentID == id }))
	}
}

func (s *Server) StudentSelfNotificationsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.lock.Lock()
		defer s.lock.Unlock()
		items := s.data.notificationsFor(sessionFrom(r).account)
		if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 && limit < len(items) {
			items = items[:limit]
		}
		writeData(w, items)
	}
}

func (s *Server) StudentSelfMaintenanceHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.lock.Lock()
		defer s.lock.Unlock()
		id := sessionFrom(r).account.ID
		writeData(w, filter(s.data.maintenance, func(m maintenance.Request) bool { return m.ReportedBy == id }))
	}
}

// filter never returns nil so empty collections encode as [].
func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func indexOf[T any](items []T, match func(T) bool) int {
	for i, item := range items {
		if match(item) {
			return i
		}
	}
	return -1
}
