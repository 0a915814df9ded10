package payments

import (
	"context"
	"net/http"

	"github.com/jrsteele09/hostel-admin/apiclient"
	"github.com/pkg/errors"
)

const basePath = "/admin/payments"

// Service wraps the admin payments endpoints. The list endpoint answers with
// the flat paginated shape, converted here to apiclient.Page.
type Service struct {
	resource apiclient.Resource[Payment]
}

func NewService(api apiclient.Requester) *Service {
	return &Service{resource: apiclient.NewResource[Payment](api, basePath)}
}

func (s *Service) GetAll(ctx context.Context, params apiclient.ListParams) (*apiclient.Page[Payment], error) {
	page, err := s.resource.ListFlat(ctx, params)
	return page, errors.Wrap(err, "[Service.GetAll] payments")
}

func (s *Service) GetByID(ctx context.Context, id string) (*Payment, error) {
	p, err := s.resource.GetByID(ctx, id)
	return p, errors.Wrap(err, "[Service.GetByID] payments")
}

func (s *Service) Create(ctx context.Context, in Input) (*Payment, error) {
	p, err := s.resource.Create(ctx, in)
	return p, errors.Wrap(err, "[Service.Create] payments")
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*Payment, error) {
	p, err := s.resource.Update(ctx, id, in)
	return p, errors.Wrap(err, "[Service.Update] payments")
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return errors.Wrap(s.resource.Delete(ctx, id), "[Service.Delete] payments")
}

// Verify confirms a payment against the bank or gateway record.
func (s *Service) Verify(ctx context.Context, id string) (*Payment, error) {
	p, err := s.resource.Action(ctx, http.MethodPatch, id, "verify", nil)
	return p, errors.Wrap(err, "[Service.Verify]")
}

func (s *Service) Refund(ctx context.Context, id, reason string) (*Payment, error) {
	p, err := s.resource.Action(ctx, http.MethodPost, id, "refund", map[string]string{"reason": reason})
	return p, errors.Wrap(err, "[Service.Refund]")
}

func (s *Service) GetStatistics(ctx context.Context) (*Statistics, error) {
	var stats Statistics
	if err := s.resource.API().Do(ctx, http.MethodGet, s.resource.Path("statistics"), apiclient.RequestOptions{}, &stats); err != nil {
		return nil, errors.Wrap(err, "[Service.GetStatistics]")
	}
	return &stats, nil
}
