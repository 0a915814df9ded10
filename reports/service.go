package reports

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jrsteele09/hostel-admin/apiclient"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const basePath = "/admin/reports"

// API is the client surface reports need: JSON reads plus raw downloads.
type API interface {
	apiclient.Requester
	Download(ctx context.Context, path string, query url.Values) ([]byte, error)
}

type Service struct {
	api      API
	fallback bool
}

type ServiceOption func(*Service)

// WithFallback serves placeholder figures when a report read fails.
func WithFallback(enabled bool) ServiceOption {
	return func(s *Service) {
		s.fallback = enabled
	}
}

func NewService(api API, options ...ServiceOption) *Service {
	s := &Service{api: api}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *Service) GetOverview(ctx context.Context) (*Overview, error) {
	var out Overview
	if err := s.get(ctx, "/overview", nil, &out); err != nil {
		if s.useFallback(err, "overview") {
			return placeholderOverview(), nil
		}
		return nil, errors.Wrap(err, "[Service.GetOverview]")
	}
	return &out, nil
}

func (s *Service) GetOccupancy(ctx context.Context) ([]HostelOccupancy, error) {
	var out []HostelOccupancy
	if err := s.get(ctx, "/occupancy", nil, &out); err != nil {
		if s.useFallback(err, "occupancy") {
			return placeholderOccupancy(), nil
		}
		return nil, errors.Wrap(err, "[Service.GetOccupancy]")
	}
	return out, nil
}

func (s *Service) GetRevenue(ctx context.Context, params RevenueParams) (*Revenue, error) {
	var out Revenue
	if err := s.get(ctx, "/revenue", params.query(), &out); err != nil {
		if s.useFallback(err, "revenue") {
			return placeholderRevenue(), nil
		}
		return nil, errors.Wrap(err, "[Service.GetRevenue]")
	}
	return &out, nil
}

// Export downloads a report file. There is no placeholder for exports.
func (s *Service) Export(ctx context.Context, kind Kind, format Format) ([]byte, error) {
	query := url.Values{"format": {string(format)}}
	data, err := s.api.Download(ctx, basePath+"/"+url.PathEscape(string(kind))+"/export", query)
	if err != nil {
		return nil, errors.Wrapf(err, "[Service.Export] %s", kind)
	}
	return data, nil
}

func (s *Service) get(ctx context.Context, path string, query url.Values, out any) error {
	return s.api.Do(ctx, http.MethodGet, basePath+path, apiclient.RequestOptions{Query: query}, out)
}

func (s *Service) useFallback(err error, report string) bool {
	if !s.fallback || !apiclient.Recoverable(err) {
		return false
	}
	log.Warn().Err(err).Str("report", report).Msg("report unavailable, serving placeholder data")
	return true
}
