package maintenance

import (
	"context"
	"net/http"

	"github.com/jrsteele09/hostel-admin/apiclient"
	"github.com/pkg/errors"
)

const basePath = "/admin/maintenance"

type Service struct {
	resource apiclient.Resource[Request]
}

func NewService(api apiclient.Requester) *Service {
	return &Service{resource: apiclient.NewResource[Request](api, basePath)}
}

func (s *Service) GetAll(ctx context.Context, params apiclient.ListParams) (*apiclient.Page[Request], error) {
	page, err := s.resource.ListNested(ctx, params, "requests")
	return page, errors.Wrap(err, "[Service.GetAll] maintenance")
}

func (s *Service) GetByID(ctx context.Context, id string) (*Request, error) {
	r, err := s.resource.GetByID(ctx, id)
	return r, errors.Wrap(err, "[Service.GetByID] maintenance")
}

func (s *Service) Create(ctx context.Context, in Input) (*Request, error) {
	r, err := s.resource.Create(ctx, in)
	return r, errors.Wrap(err, "[Service.Create] maintenance")
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*Request, error) {
	r, err := s.resource.Update(ctx, id, in)
	return r, errors.Wrap(err, "[Service.Update] maintenance")
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return errors.Wrap(s.resource.Delete(ctx, id), "[Service.Delete] maintenance")
}

// Assign hands the ticket to a staff member.
func (s *Service) Assign(ctx context.Context, id, assignee string) (*Request, error) {
	r, err := s.resource.Action(ctx, http.MethodPatch, id, "assign", map[string]string{"assigned_to": assignee})
	return r, errors.Wrap(err, "[Service.Assign]")
}

// UpdateStatus moves the ticket along its workflow. An optional note is kept
// in the ticket history by the backend.
func (s *Service) UpdateStatus(ctx context.Context, id string, status Status, note string) (*Request, error) {
	body := map[string]string{"status": string(status)}
	if note != "" {
		body["note"] = note
	}
	r, err := s.resource.Action(ctx, http.MethodPatch, id, "status", body)
	return r, errors.Wrap(err, "[Service.UpdateStatus]")
}
