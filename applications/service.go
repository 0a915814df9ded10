package applications

import (
	"context"
	"net/http"

	"github.com/jrsteele09/hostel-admin/apiclient"
	"github.com/pkg/errors"
)

const basePath = "/admin/applications"

// Service wraps the admin applications endpoints.
type Service struct {
	resource apiclient.Resource[Application]
}

func NewService(api apiclient.Requester) *Service {
	return &Service{resource: apiclient.NewResource[Application](api, basePath)}
}

// GetAll returns the list exactly as the backend's data object holds it.
func (s *Service) GetAll(ctx context.Context, params apiclient.ListParams) (*ApplicationList, error) {
	var list ApplicationList
	if err := s.resource.API().Do(ctx, http.MethodGet, basePath, apiclient.RequestOptions{Query: params.Query()}, &list); err != nil {
		return nil, errors.Wrap(err, "[Service.GetAll] applications")
	}
	return &list, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Application, error) {
	app, err := s.resource.GetByID(ctx, id)
	return app, errors.Wrap(err, "[Service.GetByID] applications")
}

func (s *Service) Create(ctx context.Context, in Input) (*Application, error) {
	app, err := s.resource.Create(ctx, in)
	return app, errors.Wrap(err, "[Service.Create] applications")
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*Application, error) {
	app, err := s.resource.Update(ctx, id, in)
	return app, errors.Wrap(err, "[Service.Update] applications")
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return errors.Wrap(s.resource.Delete(ctx, id), "[Service.Delete] applications")
}

// Approve marks an application approved with an optional reviewer note.
func (s *Service) Approve(ctx context.Context, id, note string) (*Application, error) {
	body := map[string]string{}
	if note != "" {
		body["note"] = note
	}
	app, err := s.resource.Action(ctx, http.MethodPatch, id, "approve", body)
	return app, errors.Wrap(err, "[Service.Approve]")
}

// Reject marks an application rejected. The reason is shown to the student.
func (s *Service) Reject(ctx context.Context, id, reason string) (*Application, error) {
	app, err := s.resource.Action(ctx, http.MethodPatch, id, "reject", map[string]string{"reason": reason})
	return app, errors.Wrap(err, "[Service.Reject]")
}

// AssignRoom allocates a room to an approved application.
func (s *Service) AssignRoom(ctx context.Context, id, roomID string) (*Application, error) {
	app, err := s.resource.Action(ctx, http.MethodPost, id, "assign-room", map[string]string{"room_id": roomID})
	return app, errors.Wrap(err, "[Service.AssignRoom]")
}
