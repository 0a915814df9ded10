package notifications

import (
	"context"
	"net/http"

	"github.com/jrsteele09/hostel-admin/apiclient"
	"github.com/pkg/errors"
)

const basePath = "/notifications"

// Service covers both sides: admins create and publish, any signed in actor
// reads and marks as read.
type Service struct {
	resource apiclient.Resource[Notification]
}

func NewService(api apiclient.Requester) *Service {
	return &Service{resource: apiclient.NewResource[Notification](api, basePath)}
}

func (s *Service) GetAll(ctx context.Context, params apiclient.ListParams) (*apiclient.Page[Notification], error) {
	page, err := s.resource.ListNested(ctx, params, "notifications")
	return page, errors.Wrap(err, "[Service.GetAll] notifications")
}

func (s *Service) GetByID(ctx context.Context, id string) (*Notification, error) {
	n, err := s.resource.GetByID(ctx, id)
	return n, errors.Wrap(err, "[Service.GetByID] notifications")
}

func (s *Service) Create(ctx context.Context, in Input) (*Notification, error) {
	n, err := s.resource.Create(ctx, in)
	return n, errors.Wrap(err, "[Service.Create] notifications")
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*Notification, error) {
	n, err := s.resource.Update(ctx, id, in)
	return n, errors.Wrap(err, "[Service.Update] notifications")
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return errors.Wrap(s.resource.Delete(ctx, id), "[Service.Delete] notifications")
}

func (s *Service) Publish(ctx context.Context, id string) (*Notification, error) {
	n, err := s.resource.Action(ctx, http.MethodPatch, id, "publish", nil)
	return n, errors.Wrap(err, "[Service.Publish]")
}

func (s *Service) MarkAsRead(ctx context.Context, id string) (*Notification, error) {
	n, err := s.resource.Action(ctx, http.MethodPatch, id, "read", nil)
	return n, errors.Wrap(err, "[Service.MarkAsRead]")
}

// MarkAllAsRead returns how many notifications changed.
func (s *Service) MarkAllAsRead(ctx context.Context) (int, error) {
	var out struct {
		Updated int `json:"updated"`
	}
	if err := s.resource.API().Do(ctx, http.MethodPatch, s.resource.Path("read-all"), apiclient.RequestOptions{}, &out); err != nil {
		return 0, errors.Wrap(err, "[Service.MarkAllAsRead]")
	}
	return out.Updated, nil
}

func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	var out struct {
		Count int `json:"count"`
	}
	if err := s.resource.API().Do(ctx, http.MethodGet, s.resource.Path("unread-count"), apiclient.RequestOptions{}, &out); err != nil {
		return 0, errors.Wrap(err, "[Service.UnreadCount]")
	}
	return out.Count, nil
}
