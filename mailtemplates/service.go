package mailtemplates

import (
	"context"
	"net/http"

	"github.com/jrsteele09/hostel-admin/apiclient"
	"github.com/pkg/errors"
)

const basePath = "/admin/mail-templates"

type Service struct {
	resource apiclient.Resource[Template]
}

func NewService(api apiclient.Requester) *Service {
	return &Service{resource: apiclient.NewResource[Template](api, basePath)}
}

func (s *Service) GetAll(ctx context.Context, params apiclient.ListParams) (*apiclient.Page[Template], error) {
	page, err := s.resource.ListNested(ctx, params, "templates")
	return page, errors.Wrap(err, "[Service.GetAll] mail templates")
}

func (s *Service) GetByID(ctx context.Context, id string) (*Template, error) {
	tpl, err := s.resource.GetByID(ctx, id)
	return tpl, errors.Wrap(err, "[Service.GetByID] mail templates")
}

func (s *Service) Create(ctx context.Context, in Input) (*Template, error) {
	tpl, err := s.resource.Create(ctx, in)
	return tpl, errors.Wrap(err, "[Service.Create] mail templates")
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*Template, error) {
	tpl, err := s.resource.Update(ctx, id, in)
	return tpl, errors.Wrap(err, "[Service.Update] mail templates")
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return errors.Wrap(s.resource.Delete(ctx, id), "[Service.Delete] mail templates")
}

// Preview renders a template on the backend with the given variables.
func (s *Service) Preview(ctx context.Context, id string, variables map[string]string) (*Preview, error) {
	var out Preview
	opts := apiclient.RequestOptions{Body: map[string]any{"variables": variables}}
	if err := s.resource.API().Do(ctx, http.MethodPost, s.resource.Path(id, "preview"), opts, &out); err != nil {
		return nil, errors.Wrap(err, "[Service.Preview]")
	}
	return &out, nil
}
