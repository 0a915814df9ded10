package students

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/jrsteele09/hostel-admin/apiclient"
	"github.com/jrsteele09/hostel-admin/applications"
	"github.com/jrsteele09/hostel-admin/maintenance"
	"github.com/jrsteele09/hostel-admin/notifications"
	"github.com/jrsteele09/hostel-admin/payments"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	adminPath = "/admin/students"
	selfPath  = "/student"

	// DashboardNotificationLimit caps the notifications shown on the dashboard.
	DashboardNotificationLimit = 5
)

// Service has the admin student registry and the signed in student's own
// records.
type Service struct {
	resource apiclient.Resource[Student]
	api      apiclient.Requester
}

func NewService(api apiclient.Requester) *Service {
	return &Service{
		resource: apiclient.NewResource[Student](api, adminPath),
		api:      api,
	}
}

func (s *Service) GetAll(ctx context.Context, params apiclient.ListParams) (*apiclient.Page[Student], error) {
	page, err := s.resource.ListNested(ctx, params, "students")
	return page, errors.Wrap(err, "[Service.GetAll] students")
}

func (s *Service) GetByID(ctx context.Context, id string) (*Student, error) {
	st, err := s.resource.GetByID(ctx, id)
	return st, errors.Wrap(err, "[Service.GetByID] students")
}

func (s *Service) Create(ctx context.Context, in Input) (*Student, error) {
	st, err := s.resource.Create(ctx, in)
	return st, errors.Wrap(err, "[Service.Create] students")
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*Student, error) {
	st, err := s.resource.Update(ctx, id, in)
	return st, errors.Wrap(err, "[Service.Update] students")
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return errors.Wrap(s.resource.Delete(ctx, id), "[Service.Delete] students")
}

func (s *Service) Profile(ctx context.Context) (*Student, error) {
	var st Student
	if err := s.get(ctx, "/profile", nil, &st); err != nil {
		return nil, errors.Wrap(err, "[Service.Profile]")
	}
	return &st, nil
}

// CurrentApplication returns the student's application for the running
// session, or nil when they have not applied.
func (s *Service) CurrentApplication(ctx context.Context) (*applications.Application, error) {
	var app *applications.Application
	if err := s.get(ctx, "/application", nil, &app); err != nil {
		if apiclient.IsNotFound(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "[Service.CurrentApplication]")
	}
	return app, nil
}

func (s *Service) Payments(ctx context.Context) ([]payments.Payment, error) {
	var out []payments.Payment
	if err := s.get(ctx, "/payments", nil, &out); err != nil {
		return nil, errors.Wrap(err, "[Service.Payments]")
	}
	return out, nil
}

func (s *Service) Notifications(ctx context.Context, limit int) ([]notifications.Notification, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var out []notifications.Notification
	if err := s.get(ctx, "/notifications", query, &out); err != nil {
		return nil, errors.Wrap(err, "[Service.Notifications]")
	}
	return out, nil
}

func (s *Service) MaintenanceRequests(ctx context.Context) ([]maintenance.Request, error) {
	var out []maintenance.Request
	if err := s.get(ctx, "/maintenance", nil, &out); err != nil {
		return nil, errors.Wrap(err, "[Service.MaintenanceRequests]")
	}
	return out, nil
}

// GetDashboardData runs the five dashboard reads concurrently. It never
// fails: a read that errors is replaced by its placeholder and recorded in
// Failed.
func (s *Service) GetDashboardData(ctx context.Context) *DashboardData {
	data := &DashboardData{
		Payments:      []payments.Payment{},
		Notifications: []notifications.Notification{},
		Maintenance:   []maintenance.Request{},
		Failed:        map[string]error{},
	}

	var (
		g    errgroup.Group
		lock sync.Mutex
	)
	fail := func(read string, err error) {
		log.Warn().Err(err).Str("read", read).Msg("dashboard read failed, using placeholder")
		lock.Lock()
		data.Failed[read] = err
		lock.Unlock()
	}

	g.Go(func() error {
		profile, err := s.Profile(ctx)
		if err != nil {
			fail(ReadProfile, err)
			return nil
		}
		data.Profile = profile
		return nil
	})
	g.Go(func() error {
		app, err := s.CurrentApplication(ctx)
		if err != nil {
			fail(ReadApplication, err)
			return nil
		}
		data.Application = app
		return nil
	})
	g.Go(func() error {
		list, err := s.Payments(ctx)
		if err != nil {
			fail(ReadPayments, err)
			return nil
		}
		if list != nil {
			data.Payments = list
		}
		return nil
	})
	g.Go(func() error {
		list, err := s.Notifications(ctx, DashboardNotificationLimit)
		if err != nil {
			fail(ReadNotifications, err)
			return nil
		}
		if list != nil {
			data.Notifications = list
		}
		return nil
	})
	g.Go(func() error {
		list, err := s.MaintenanceRequests(ctx)
		if err != nil {
			fail(ReadMaintenance, err)
			return nil
		}
		if list != nil {
			data.Maintenance = list
		}
		return nil
	})

	_ = g.Wait()
	return data
}

func (s *Service) get(ctx context.Context, path string, query url.Values, out any) error {
	return s.api.Do(ctx, http.MethodGet, selfPath+path, apiclient.RequestOptions{Query: query}, out)
}
