package hostels

import (
	"context"
	"net/http"

	"github.com/jrsteele09/hostel-admin/apiclient"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const basePath = "/admin/hostels"

type Service struct {
	resource apiclient.Resource[Hostel]
	fallback bool
}

type ServiceOption func(*Service)

// WithFallback serves placeholder data when a read fails. Meant for staging
// and demos; every substitution is logged.
func WithFallback(enabled bool) ServiceOption {
	return func(s *Service) {
		s.fallback = enabled
	}
}

func NewService(api apiclient.Requester, options ...ServiceOption) *Service {
	s := &Service{resource: apiclient.NewResource[Hostel](api, basePath)}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *Service) GetAll(ctx context.Context, params apiclient.ListParams) (*apiclient.Page[Hostel], error) {
	page, err := s.resource.ListNested(ctx, params, "hostels")
	if err != nil {
		if s.useFallback(err, "list") {
			return placeholderPage(), nil
		}
		return nil, errors.Wrap(err, "[Service.GetAll] hostels")
	}
	return page, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Hostel, error) {
	h, err := s.resource.GetByID(ctx, id)
	return h, errors.Wrap(err, "[Service.GetByID] hostels")
}

func (s *Service) Create(ctx context.Context, in Input) (*Hostel, error) {
	h, err := s.resource.Create(ctx, in)
	return h, errors.Wrap(err, "[Service.Create] hostels")
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*Hostel, error) {
	h, err := s.resource.Update(ctx, id, in)
	return h, errors.Wrap(err, "[Service.Update] hostels")
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return errors.Wrap(s.resource.Delete(ctx, id), "[Service.Delete] hostels")
}

// GetRooms lists the rooms of one hostel.
func (s *Service) GetRooms(ctx context.Context, hostelID string) ([]Room, error) {
	var rooms []Room
	if err := s.resource.API().Do(ctx, http.MethodGet, s.resource.Path(hostelID, "rooms"), apiclient.RequestOptions{}, &rooms); err != nil {
		if s.useFallback(err, "rooms") {
			return placeholderRooms(hostelID), nil
		}
		return nil, errors.Wrap(err, "[Service.GetRooms]")
	}
	return rooms, nil
}

func (s *Service) useFallback(err error, read string) bool {
	if !s.fallback || !apiclient.Recoverable(err) {
		return false
	}
	log.Warn().Err(err).Str("read", read).Msg("hostels unavailable, serving placeholder data")
	return true
}
